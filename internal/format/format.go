// Package format renders prices, amounts and dates for the configured locale.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const isoDate = "2006-01-02"

var dateLayouts = map[string]string{
	"pt": "02/01/2006",
	"es": "02/01/2006",
	"fr": "02/01/2006",
	"de": "02.01.2006",
}

// Formatter formats values for one locale.
type Formatter struct {
	tag        language.Tag
	printer    *message.Printer
	symbol     string
	dateLayout string
}

// New builds a Formatter for a BCP 47 tag such as "pt-BR".
func New(tag, currencySymbol string) (*Formatter, error) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", tag, err)
	}
	return &Formatter{
		tag:        parsed,
		printer:    message.NewPrinter(parsed),
		symbol:     currencySymbol,
		dateLayout: layoutFor(parsed),
	}, nil
}

func layoutFor(tag language.Tag) string {
	if tag == language.AmericanEnglish {
		return "01/02/2006"
	}
	base, _ := tag.Base()
	if layout, ok := dateLayouts[base.String()]; ok {
		return layout
	}
	return isoDate
}

// Tag returns the locale the formatter was built for.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Money renders an amount with two decimals and the currency symbol.
func (f *Formatter) Money(amount float64) string {
	return f.printer.Sprintf("%s %v", f.symbol, number.Decimal(amount, number.Scale(2)))
}

// Date renders a calendar date in the locale's short form.
func (f *Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(f.dateLayout)
}

// InputDate renders a date for an HTML date input, which always expects ISO form.
func (f *Formatter) InputDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(isoDate)
}

// ParseInputDate parses the value posted by an HTML date input.
func ParseInputDate(value string) (time.Time, error) {
	return time.ParseInLocation(isoDate, value, time.UTC)
}
