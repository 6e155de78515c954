package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetMultiline prints a prompt to w and reads multiple lines until an empty
// line is entered (i.e., the user presses Enter twice). The trailing newline
// on each line is trimmed and the collected text is joined with '\n'.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetList reads one line of comma-separated values. Blank items are dropped
// and the result is never nil.
func GetList(reader *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	line, err := GetSimpleText(reader, prompt+" (comma separated)", w)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, item := range strings.Split(line, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, nil
}

// GetChoice reads one of options. An empty answer selects def; anything not
// in options is rejected.
func GetChoice(reader *bufio.Reader, prompt string, options []string, def string, w io.Writer) (string, error) {
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%s] (default %s)", prompt, strings.Join(options, "/"), def), w)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	for _, o := range options {
		if o == line {
			return line, nil
		}
	}
	return "", fmt.Errorf("unknown choice %q", line)
}

// GetYesNo reads a y/n answer. Anything other than y or yes is no.
func GetYesNo(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	line, err := GetSimpleText(reader, prompt+" (y/N)", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// GetOptional returns nil for a blank answer.
func GetOptional(reader *bufio.Reader, prompt string, w io.Writer) (*string, error) {
	line, err := GetSimpleText(reader, prompt+" (optional)", w)
	if err != nil || line == "" {
		return nil, err
	}
	return &line, nil
}

// GetDefault reads one line; a blank answer keeps current.
func GetDefault(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%s]", prompt, current), w)
	if err != nil || line == "" {
		return current, err
	}
	return line, nil
}

// GetOptionalDefault is GetDefault for optional values: a blank answer keeps
// current and "-" clears it.
func GetOptionalDefault(reader *bufio.Reader, prompt string, current *string, w io.Writer) (*string, error) {
	shown := "-"
	if current != nil {
		shown = *current
	}
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%s] (- clears)", prompt, shown), w)
	switch {
	case err != nil, line == "":
		return current, err
	case line == "-":
		return nil, nil
	}
	return &line, nil
}

// GetListDefault reads a comma-separated list; a blank answer keeps current.
func GetListDefault(reader *bufio.Reader, prompt string, current []string, w io.Writer) ([]string, error) {
	line, err := GetSimpleText(reader, fmt.Sprintf("%s [%s] (comma separated)", prompt, strings.Join(current, ", ")), w)
	if err != nil || line == "" {
		return current, err
	}
	out := []string{}
	for _, item := range strings.Split(line, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, nil
}
