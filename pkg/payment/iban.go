package payment

import (
	"maps"
	"strings"
)

// IBANResolver selects the payee IBAN for a document.
type IBANResolver interface {
	ResolveIBAN(doc Document) (string, error)
}

// IBANDirectory maps department classifiers to payee IBANs.
// Documents whose department is not listed fall back to their own PayeeIBAN.
// The zero value is usable and behaves as an empty directory.
type IBANDirectory struct {
	departments map[string]string
}

// NewIBANDirectory builds a directory from a department → IBAN mapping.
// The mapping is copied, later changes to byDepartment are not observed.
func NewIBANDirectory(byDepartment map[string]string) IBANDirectory {
	departments := make(map[string]string, len(byDepartment))
	for dept, iban := range byDepartment {
		dept = strings.TrimSpace(dept)
		if dept == "" {
			continue
		}
		departments[dept] = NormalizeIBAN(iban)
	}
	return IBANDirectory{departments: departments}
}

// ResolveIBAN implements IBANResolver.
func (d IBANDirectory) ResolveIBAN(doc Document) (string, error) {
	if dept := strings.TrimSpace(doc.Department); dept != "" {
		if iban, ok := d.departments[dept]; ok && iban != "" {
			return iban, nil
		}
	}
	if iban := NormalizeIBAN(doc.PayeeIBAN); iban != "" {
		return iban, nil
	}
	return "", ErrMissingIBAN
}

// Departments returns a copy of the configured mapping.
func (d IBANDirectory) Departments() map[string]string {
	return maps.Clone(d.departments)
}

// NormalizeIBAN strips spaces from the printed IBAN form and upper-cases it.
// It does not validate the checksum.
func NormalizeIBAN(iban string) string {
	return strings.ToUpper(strings.Join(strings.Fields(iban), ""))
}

// resolveIBAN falls back to the document's own IBAN when no resolver is set.
func resolveIBAN(r IBANResolver, doc Document) (string, error) {
	if r == nil {
		r = IBANDirectory{}
	}
	iban, err := r.ResolveIBAN(doc)
	if err != nil {
		return "", err
	}
	if iban == "" {
		return "", ErrMissingIBAN
	}
	return iban, nil
}
