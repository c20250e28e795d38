package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the address' domain actually resolves:
// a published mail exchanger if there is one, any host record otherwise.
// Shape validation happens at the binding layer; this only weeds out domains
// that cannot receive mail at all.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
