package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Coderush2004/railway-desk/internal/domain"
)

// prompter collects raw field values from the operator. Parsing failures
// come back as error values (never panics), so the core only ever receives
// well-formed scalars.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// line prints the label and reads one trimmed input line. io.EOF means the
// operator closed the session.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	raw, err := p.in.ReadString('\n')
	if err != nil && raw == "" {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (p *prompter) intField(label string) (int, error) {
	raw, err := p.line(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ErrInvalidNumber
	}
	return n, nil
}

func (p *prompter) floatField(label string) (float64, error) {
	raw, err := p.line(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.ErrInvalidNumber
	}
	return f, nil
}

func (p *prompter) dateField(label string) (time.Time, error) {
	raw, err := p.line(label)
	if err != nil {
		return time.Time{}, err
	}
	return domain.ParseTravelDate(raw)
}
