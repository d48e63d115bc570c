package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/etnz/balancesheet"
)

// prompter asks questions to the user of the interactive commands.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(r), out: w}
}

// ask prints the question and returns the trimmed answer.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprintf(p.out, "%s\n> ", question)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// wallet parses value, or asks for the wallet if value is empty.
func (p *prompter) wallet(value string) (balancesheet.Wallet, error) {
	if value == "" {
		var err error
		if value, err = p.ask("Focus on wallet:"); err != nil {
			return "", err
		}
	}
	return balancesheet.ParseWallet(value)
}

// selectFile lists the files in dir and returns the path of the one the user
// picked.
func (p *prompter) selectFile(dir, title string) (string, error) {
	files, err := balancesheet.ListInputs(dir)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(p.out, "%s\n\n", title)
	for i, f := range files {
		fmt.Fprintf(p.out, "%-5d%s\n", i+1, f)
	}
	fmt.Fprintln(p.out)
	answer, err := p.ask("")
	if err != nil {
		return "", err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(files) {
		return "", fmt.Errorf("invalid selection %q: pick a number between 1 and %d", answer, len(files))
	}
	return filepath.Join(dir, files[n-1]), nil
}
