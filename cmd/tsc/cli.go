package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/fatih/color"
	"github.com/iancoleman/strcase"
	"github.com/jmespath-community/go-jmespath"
	"github.com/piercep/thread-safe-collections/pkg"
	"github.com/piercep/thread-safe-collections/pkg/cfg"
	"github.com/piercep/thread-safe-collections/pkg/common/fmtx"
	"github.com/piercep/thread-safe-collections/pkg/common/pathx"
	"github.com/piercep/thread-safe-collections/pkg/common/timex"
	"github.com/samber/lo"
	"github.com/segmentio/textio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"io"
	"os"
	"path"
	"reflect"
	"sort"
	"strings"
	"time"
)

type CLI struct {
	tsc    *pkg.TSC
	config *cfg.Config

	cmd      *cobra.Command
	exitFunc func(code int)

	started time.Time
	ended   time.Time

	outputFormat   string
	outputValue    string
	outputQuery    string
	outputBuffer   *bytes.Buffer
	outputFile     string
	outputResponse *OutputResponse
}

func NewCLI(tsc *pkg.TSC, config *cfg.Config) *CLI {
	result := new(CLI)

	result.tsc = tsc
	result.config = config
	result.exitFunc = os.Exit

	result.outputFormat = fmtx.Text
	result.outputFile = cfg.OutputFileDefault
	result.outputBuffer = bytes.NewBufferString("")
	result.outputResponse = outputResponseDefault()
	result.cmd = result.rootCmd()

	return result
}

// OutputResponse defines a structure of data to be printed
type OutputResponse struct {
	Msg     string         `yaml:"msg" json:"msg"`
	Failed  bool           `yaml:"failed" json:"failed"`
	Changed bool           `yaml:"changed" json:"changed"`
	Log     string         `yaml:"log" json:"log"`
	Data    map[string]any `yaml:"data" json:"data"`
	Ended   time.Time      `yaml:"ended" json:"ended"`
	Elapsed time.Duration  `yaml:"elapsed" json:"elapsed"`
}

func outputResponseDefault() *OutputResponse {
	return &OutputResponse{
		Msg:     "",
		Failed:  false,
		Changed: false,
		Log:     "",
		Data:    map[string]any{},
	}
}

func (c *CLI) ExecContext(ctx context.Context) {
	if err := c.cmd.ExecuteContext(ctx); err != nil {
		c.exitFunc(1)
	}
}

func (c *CLI) configure() {
	c.config.ConfigureLogger()
	c.configureOutput()
	c.tsc.Configure(c.config)
	c.started = time.Now()
}

func (c *CLI) configureOutput() {
	cv := c.config.Values()
	color.NoColor = color.NoColor || cv.Output.NoColor

	c.outputValue = cv.Output.Value
	c.outputQuery = cv.Output.Query
	if len(c.outputValue) > 0 {
		c.outputFormat = fmtx.Text
	} else {
		c.outputFile = cv.Output.File
		c.outputFormat = strings.ReplaceAll(cv.Output.Format, "yaml", "yml")
	}

	if !lo.Contains(cfg.OutputFormats(), c.outputFormat) {
		log.Fatalf("unsupported CLI output format detected! supported ones are: %s", strings.Join(cfg.OutputFormats(), ", "))
	}

	if c.outputFormat == fmtx.None { // print to file but not to stdout
		outputWriter := c.openOutputFile()
		c.tsc.SetOutput(outputWriter)
		log.SetOutput(outputWriter)
	} else if c.outputFormat != fmtx.Text { // print to file but also buffer to later print serialized to stdout
		outputWriter := io.MultiWriter(c.outputBuffer, c.openOutputFile())
		c.tsc.SetOutput(outputWriter)
		log.SetOutput(outputWriter)
		color.NoColor = true
	}
}

func (c *CLI) openOutputFile() *os.File {
	if err := pathx.Ensure(path.Dir(c.outputFile)); err != nil {
		log.Fatalf("cannot ensure TSC output directory for file '%s': %s", c.outputFile, err)
	}
	file, err := os.OpenFile(c.outputFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		log.Fatalf("cannot open/create TSC output file properly at path '%s': %s", c.outputFile, err)
	}
	return file
}

func (c *CLI) elapsed() time.Duration {
	return c.ended.Sub(c.started)
}

// Exit reads response data then prints currently captured output then exits app with proper status code
func (c *CLI) exit() {
	c.ended = time.Now()
	c.outputResponse.Ended = c.ended
	c.outputResponse.Elapsed = c.elapsed()
	c.outputResponse.Log = c.outputBuffer.String()

	if err := c.queryOutput(); err != nil {
		c.Error(err)
	}

	if c.outputFormat == fmtx.None {
		c.printCommandResult()
	} else if c.outputFormat == fmtx.Text {
		if len(c.outputValue) > 0 {
			c.printOutputValue()
		} else {
			c.printOutputText()
			c.printCommandResult()
		}
	} else {
		c.printOutputMarshaled()
	}

	if c.outputResponse.Failed {
		c.exitFunc(1)
		return
	}
	c.exitFunc(0)
}

// queryOutput replaces data with the result of JMESPath query evaluated against its JSON form
func (c *CLI) queryOutput() error {
	if len(c.outputQuery) == 0 {
		return nil
	}
	dataJSON, err := json.Marshal(c.outputResponse.Data)
	if err != nil {
		return fmt.Errorf("cannot prepare output data for query '%s': %w", c.outputQuery, err)
	}
	var data any
	if err := json.Unmarshal(dataJSON, &data); err != nil {
		return fmt.Errorf("cannot prepare output data for query '%s': %w", c.outputQuery, err)
	}
	result, err := jmespath.Search(c.outputQuery, data)
	if err != nil {
		return fmt.Errorf("cannot query output data using '%s': %w", c.outputQuery, err)
	}
	c.outputResponse.Data = map[string]any{"query": result}
	return nil
}

func (c *CLI) printCommandResult() {
	fmt.Print(fmtx.TblList("command result", [][]any{
		{"message", c.outputResponse.Msg},
		{"changed", c.outputResponse.Changed},
		{"failed", c.outputResponse.Failed},
		{"elapsed", c.outputResponse.Elapsed},
		{"ended", timex.Human(c.outputResponse.Ended)},
	}))
}

func (c *CLI) printOutputValue() {
	value, ok := c.outputResponse.Data[c.outputValue]
	if !ok {
		fmt.Println("<undefined>")
	} else {
		fmt.Println(fmtx.MarshalText(value))
	}
}

func (c *CLI) printOutputText() {
	if c.outputResponse.Data != nil {
		c.printOutputTextIndented(textio.NewPrefixWriter(os.Stdout, ""), c.outputResponse.Data)
	}
}

func (c *CLI) printOutputTextIndented(writer *textio.PrefixWriter, value any) {
	if value == nil {
		_, _ = writer.WriteString("<empty>\n")
		return
	}
	if _, ok := value.(fmtx.TextMarshaler); ok {
		_, _ = writer.WriteString(strings.TrimSuffix(fmtx.MarshalText(value), "\n") + "\n")
		return
	}
	rv := reflect.ValueOf(value)
	switch rv.Type().Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			c.printOutputTextIndented(writer, "<empty>")
		} else {
			for i := 0; i < rv.Len(); i++ {
				iv := rv.Index(i).Interface()
				c.printOutputTextIndented(writer, iv)
			}
		}
	case reflect.Map:
		if rv.Len() == 0 {
			c.printOutputTextIndented(writer, "<empty>")
		} else {
			dw := textio.NewPrefixWriter(writer, "  ")
			keys := rv.MapKeys()
			sort.SliceStable(keys, func(k1, k2 int) bool {
				return strings.Compare(fmt.Sprintf("%v", keys[k1].Interface()), fmt.Sprintf("%v", keys[k2].Interface())) < 0
			})
			for _, k := range keys {
				_, _ = writer.WriteString(fmt.Sprintf("%s\n", k))
				mv := rv.MapIndex(k).Interface()
				c.printOutputTextIndented(dw, mv)
			}
		}
	default:
		_, _ = writer.WriteString(strings.TrimSuffix(fmtx.MarshalText(value), "\n") + "\n")
	}
}

func (c *CLI) printOutputMarshaled() {
	text, err := fmtx.MarshalDataInFormat(c.outputFormat, c.outputResponse)
	if err != nil {
		log.Fatalf("cannot serialize CLI output to target format '%s': %s", c.outputFormat, err)
	}
	fmt.Println(text)
}

func (c *CLI) Ok(message string) {
	c.Success(message, false)
}

func (c *CLI) Changed(message string) {
	c.Success(message, true)
}

func (c *CLI) Success(message string, changed bool) {
	c.outputResponse.Failed = false
	c.outputResponse.Changed = changed
	c.outputResponse.Msg = message
}

func (c *CLI) Fail(msg string) {
	c.outputResponse.Failed = true
	c.outputResponse.Msg = msg
}

func (c *CLI) Error(err error) {
	c.Fail(fmt.Sprintf("%s", err))
}

func (c *CLI) ReadInput(out any) error {
	format := c.config.Values().Input.Format
	str := c.config.Values().Input.String
	file := c.config.Values().Input.File

	if len(str) > 0 {
		err := fmtx.UnmarshalDataInFormat(format, strings.NewReader(str), out)
		if err != nil {
			return fmt.Errorf("cannot parse string input properly: %w", err)
		}
	} else if file == cfg.InputStdin {
		err := fmtx.UnmarshalDataInFormat(format, bufio.NewReader(os.Stdin), out)
		if err != nil {
			return fmt.Errorf("cannot parse STDIN input properly: %w", err)
		}
	} else {
		if err := fmtx.UnmarshalFileInFormat(format, file, out); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLI) SetOutput(name string, data any) {
	c.outputResponse.Data[c.fixOutputName(name)] = data
}

func (c *CLI) fixOutputName(name string) string {
	if c.outputFormat == fmtx.YML {
		name = strcase.ToSnake(name)
	}
	return name
}
