package fmtx

import (
	"bytes"
	"fmt"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"io"
	"reflect"
	"sort"
	"strings"
)

const (
	TblColWidth = 120
	TblEmpty    = "<empty>"
)

// TblList renders two-column rows without header, e.g. labels with values
func TblList(caption string, items [][]any) string {
	return renderTbl(caption, func(tbl *tablewriter.Table) {
		tbl.SetHeader([]string{})
		for _, item := range items {
			tbl.Append([]string{TblValue(item[0]), TblValue(item[1])})
		}
	})
}

// TblRows renders rows numbered from 1 with values picked by header names
func TblRows(caption string, header []string, rows []map[string]any) string {
	return renderTbl(caption, func(tbl *tablewriter.Table) {
		tbl.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		tbl.SetHeader(append([]string{"#"}, header...))
		tbl.AppendBulk(lo.Map(rows, func(row map[string]any, index int) []string {
			return append([]string{TblValue(index + 1)}, lo.Map(header, func(column string, _ int) string {
				return TblValue(row[column])
			})...)
		}))
	})
}

func renderTbl(caption string, fill func(tbl *tablewriter.Table)) string {
	sb := bytes.NewBufferString("\n")
	sb.WriteString(fmt.Sprintf("%s\n\n", caption))
	tbl := newTbl(sb)
	fill(tbl)
	tbl.Render()
	sb.WriteString("\n")
	return sb.String()
}

func newTbl(w io.Writer) *tablewriter.Table {
	tbl := tablewriter.NewWriter(w)
	tbl.SetColWidth(TblColWidth)
	tbl.SetBorder(false)
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)
	return tbl
}

func TblValue(value any) string {
	result := ""
	if value != nil {
		rv := reflect.ValueOf(value)
		switch rv.Type().Kind() {
		case reflect.Map:
			entries := lo.Map(rv.MapKeys(), func(key reflect.Value, _ int) string {
				return fmt.Sprintf("%v = %v", key.Interface(), rv.MapIndex(key).Interface())
			})
			sort.Strings(entries)
			result = strings.Join(entries, ", ")
		case reflect.Array, reflect.Slice:
			items := make([]string, rv.Len())
			for i := range items {
				items[i] = fmt.Sprintf("%v", rv.Index(i).Interface())
			}
			result = strings.Join(items, ", ")
		default:
			result = MarshalText(value)
		}
	}
	if len(result) == 0 {
		return TblEmpty
	}
	return result
}
