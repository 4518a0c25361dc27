package symbols

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrEmptyKey        = errors.New("catalog key is empty")
	ErrUnsupportedChar = errors.New("catalog key contains unsupported character")
	ErrLeadingDigit    = errors.New("derived identifier starts with a digit")
	ErrDuplicateKey    = errors.New("catalog key is listed more than once")
	ErrCollision       = errors.New("catalog keys derive the same identifier")
	ErrReserved        = errors.New("derived identifier is reserved")
)

// Symbol pairs a generated Go identifier with the catalog key it stands for.
type Symbol struct {
	Name string
	Key  string
}

// Table is an immutable, key-ordered set of symbols.
type Table struct {
	symbols []Symbol
	byName  map[string]string
}

// Derive converts a catalog key into an exported Go identifier.
//
// Words are split on '_', '-', '.', ' ' and '/', title-cased and joined:
// "board_kaya" becomes "BoardKaya" and "go_lid_1" becomes "GoLid1".
func Derive(key string) (string, error) {
	return derive(key, cases.Title(language.Und, cases.NoLower))
}

func derive(key string, caser cases.Caser) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", ErrEmptyKey
	}
	for _, r := range key {
		if isSeparator(r) || isASCIIAlnum(r) {
			continue
		}
		return "", fmt.Errorf("%w: %q in %q", ErrUnsupportedChar, r, key)
	}

	var builder strings.Builder
	for _, word := range strings.FieldsFunc(key, isSeparator) {
		builder.WriteString(caser.String(word))
	}
	name := builder.String()
	if name == "" {
		return "", fmt.Errorf("%w: %q has no letters or digits", ErrEmptyKey, key)
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "", fmt.Errorf("%w: %q derives %q", ErrLeadingDigit, key, name)
	}
	return name, nil
}

// Build derives a symbol for every key and returns them ordered by key.
//
// Every problem found is reported in the returned error, so a broken catalog
// can be fixed in one pass.
func Build(keys []string, reserved []string) (Table, error) {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	reservedSet := make(map[string]struct{}, len(reserved))
	for _, name := range reserved {
		reservedSet[name] = struct{}{}
	}

	caser := cases.Title(language.Und, cases.NoLower)
	table := Table{
		symbols: make([]Symbol, 0, len(sorted)),
		byName:  make(map[string]string, len(sorted)),
	}
	var errs []error
	for i, key := range sorted {
		if i > 0 && sorted[i-1] == key {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateKey, key))
			continue
		}
		name, err := derive(key, caser)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, ok := reservedSet[name]; ok {
			errs = append(errs, fmt.Errorf("%w: %q derives %q", ErrReserved, key, name))
			continue
		}
		if prior, ok := table.byName[name]; ok {
			errs = append(errs, fmt.Errorf("%w: %q and %q both derive %q", ErrCollision, prior, key, name))
			continue
		}
		table.byName[name] = key
		table.symbols = append(table.symbols, Symbol{Name: name, Key: key})
	}
	if len(errs) > 0 {
		return Table{}, errors.Join(errs...)
	}
	return table, nil
}

// Symbols returns a copy of the table in key order.
func (t Table) Symbols() []Symbol {
	result := make([]Symbol, len(t.symbols))
	copy(result, t.symbols)
	return result
}

// Len reports the number of symbols.
func (t Table) Len() int {
	return len(t.symbols)
}

// Lookup returns the catalog key for a generated identifier.
func (t Table) Lookup(name string) (string, bool) {
	key, ok := t.byName[name]
	return key, ok
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', ' ', '/':
		return true
	}
	return false
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
