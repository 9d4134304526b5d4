package format

import (
	"fmt"
	"time"
)

// Portuguese month names, lowercase as written in running text.
var ptMonths = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// LongDate renders a date the way order documents print it:
// "2 de janeiro de 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), ptMonths[t.Month()-1], t.Year())
}
