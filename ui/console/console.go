// Package console implements the ui view contracts on a terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dcastano/gestion-inventario/ui"
)

// Table renders product rows to a writer and remembers the last rendered
// rows so callers can resolve a row number to a record identifier.
type Table struct {
	out  io.Writer
	rows []ui.Row
}

func NewTable(out io.Writer) *Table {
	return &Table{out: out}
}

func (t *Table) SetRows(rows []ui.Row) {
	t.rows = rows

	w := tabwriter.NewWriter(t.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNombre\tDescripción\tPrecio\tCantidad")
	for i, row := range rows {
		fmt.Fprintf(w, "%d\t%s\n", i+1, strings.Join(row.Cells, "\t"))
	}
	_ = w.Flush()
}

func (t *Table) ShowEmpty(message string) {
	t.rows = nil
	fmt.Fprintln(t.out, message)
}

// Rows returns the rows currently on screen.
func (t *Table) Rows() []ui.Row {
	return t.rows
}

// Form stages the field values between prompts and submission.
type Form struct {
	values ui.FormValues
	mode   ui.Mode
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) Values() ui.FormValues     { return f.values }
func (f *Form) SetValues(v ui.FormValues) { f.values = v }

func (f *Form) Reset() {
	f.values = ui.FormValues{}
}

func (f *Form) SetMode(m ui.Mode) { f.mode = m }
func (f *Form) Mode() ui.Mode     { return f.mode }

// Prompt reads the four product fields from in. An empty answer keeps the
// field's current value, which is how an edit shows the fetched record.
func (f *Form) Prompt(in *bufio.Reader, out io.Writer) error {
	fields := []struct {
		label string
		value *string
	}{
		{"Nombre", &f.values.Name},
		{"Descripción", &f.values.Description},
		{"Precio", &f.values.Price},
		{"Cantidad", &f.values.Quantity},
	}

	for _, field := range fields {
		if *field.value != "" {
			fmt.Fprintf(out, "%s [%s]: ", field.label, *field.value)
		} else {
			fmt.Fprintf(out, "%s: ", field.label)
		}
		line, err := in.ReadString('\n')
		if err != nil {
			return err
		}
		if line = strings.TrimSpace(line); line != "" {
			*field.value = line
		}
	}
	return nil
}

// Confirmer asks yes/no questions on the terminal.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewConfirmer(in *bufio.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: in, out: out}
}

func (c *Confirmer) Confirm(message string) bool {
	fmt.Fprintf(c.out, "%s (s/n): ", message)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "si", "sí":
		return true
	}
	return false
}
