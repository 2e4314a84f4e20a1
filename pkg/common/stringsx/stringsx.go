package stringsx

import (
	"fmt"
	"strconv"
)

func Percent(num, total, decimals int) string {
	value := 0.0

	if total != 0 {
		value = float64(num) / float64(total) * float64(100)
	}

	return fmt.Sprintf("%."+strconv.Itoa(decimals)+"f%%", value)
}

func PercentExplained(num, total, decimals int) string {
	return fmt.Sprintf("%d/%d=%s", num, total, Percent(num, total, decimals))
}
