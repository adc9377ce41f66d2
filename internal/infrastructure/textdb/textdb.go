// Package textdb implements the pipe-delimited flat-file record protocol
// shared by the patient, doctor, admin and appointment stores. Each file is a
// mandatory header line followed by one record per line, fields joined by "|".
package textdb

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

const Separator = "|"

// EnsureHeader makes sure path starts with exactly the expected header line.
// An absent or empty file is created containing only the header. A file whose
// first line differs gets the header prepended with all existing lines kept.
// Idempotent; never drops data.
func EnsureHeader(path, header string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) || (err == nil && info.Size() == 0) {
		return os.WriteFile(path, []byte(header+"\n"), 0o644)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	lines := splitLines(string(raw))
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == header {
		return nil
	}
	content := header + "\n" + strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("rewrite %s: %w", path, err)
	}
	return nil
}

// ReadRecords loads every record line of path, split into fields. The header
// line and blank lines are skipped wherever they appear. An absent file yields
// no records and no error.
func ReadRecords(path, header string) ([][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var records [][]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.TrimSpace(line) == header {
			continue
		}
		records = append(records, strings.Split(line, Separator))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

// AppendRecord writes one record line at the end of path.
func AppendRecord(path string, fields []string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(strings.Join(fields, Separator) + "\n"); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	return nil
}

// RewriteAll truncates path and writes the header followed by every record in
// the supplied order. After it succeeds the file exactly reflects the
// collection; a partial write on crash is an accepted risk of the format.
func RewriteAll(path, header string, records [][]string) error {
	var b strings.Builder
	b.WriteString(header + "\n")
	for _, fields := range records {
		b.WriteString(strings.Join(fields, Separator) + "\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("rewrite %s: %w", path, err)
	}
	return nil
}

// RewriteLines is RewriteAll for stores that manage raw lines themselves.
func RewriteLines(path string, lines []string) error {
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("rewrite %s: %w", path, err)
	}
	return nil
}

// ReadLines returns every line of path with line endings stripped, trailing
// blank lines dropped. An absent file yields nil.
func ReadLines(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return splitLines(string(raw)), nil
}

func splitLines(raw string) []string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
