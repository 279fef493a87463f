// Package classifier decides whether a fetched page is genuine content or
// a parked/placeholder page served by a registrar or domain reseller.
package classifier

import (
	"regexp"
	"strings"

	"randomnet/internal/platform/errors"
)

// defaultSignatures are matched case-insensitively anywhere in a page
// body, across line boundaries. A single hit marks the page as parked.
var defaultSignatures = []string{
	// Domain registrars mentioned on their own parking pages.
	`namecheap\.com`,
	`123reg\.co\.uk`,
	`tactic\.co\.uk`,
	`godaddy\.com`,
	`easynic\.com`,
	`directnic\.com`,
	`hostmonstrer\.com`,
	`dreamhost\.com`,
	`easily\.co\.uk`,
	`livetodot\.com`,
	`webhosting\.yahoo\.com`,
	`smallbusiness\.yahoo\.com`,
	`webmailer\.de`,
	// Companies which buy and park domains in bulk.
	`future media architects`,
	`sedoparking\.com`,
	`digimedia\.com`,
	`buydomains\.com`,
	`domainnamesales\.com`,
	`smartname\.com`,
	`cajun\.domains`,
	`1and1\.com`,
	`secureserver\.net`,
	`directdomains\.com`,
	`buydomainnames\.co\.uk`,
	`rmgserving\.com`,
	`domainfort\.com`,
	// Appears in comments on some Sedo Holding pages.
	`turing_cluster_prod`,
	// Empty shell served by some parkers.
	`<html><head></head><body><!-- vbe --></body></html>`,
	// Cookie line seen on some parked pages.
	`document\.cookie = "jsc=1";`,
	// Click-tracking script used by parking lots.
	`log_click\.php\?`,
	`domainpark`,
	`registrar parking`,
	// Seen in URLs of German domain parkers.
	`domanregistrering`,
	`applyFrameKiller`,
	// For-sale boilerplate.
	`full list of domains`,
	`domain names? for sale`,
	`(?:is|may ?be) (?:availiable)? for sale`,
	`for enquiries about this domain`,
	`domain(?: name) is available`,
	`get your domain name`,
	`whois`,
	`has been reserved for future use`,
	// Plesk placeholder pages.
	`parallels\.com`,
	// Broken or default server pages.
	`site temporarily unavailable`,
	`403 Forbidden`,
	`<h1 align="center">It Worked!</h1>`,
	// Sponsored-listing landing pages.
	`below are sponsored listings`,
	`related searches`,
	`requires javascript`,
}

// Signatures matches page bodies against the parked-page corpus. The zero
// value is not usable; build one with New.
type Signatures struct {
	re *regexp.Regexp
}

// New compiles the default signature corpus plus any extra patterns into
// one case-insensitive matcher whose `.` crosses line boundaries.
func New(extra ...string) (*Signatures, error) {
	patterns := append(append([]string{}, defaultSignatures...), extra...)
	if len(patterns) == 0 {
		return nil, errors.ErrNoSignatures
	}

	re, err := regexp.Compile(`(?is)` + strings.Join(patterns, "|"))
	if err != nil {
		return nil, errors.Wrap(err, "compile parked-page signatures")
	}
	return &Signatures{re: re}, nil
}

// Genuine reports whether the body looks like real content, i.e. it
// matched none of the parked-page signatures.
func (s *Signatures) Genuine(body string) bool {
	return !s.re.MatchString(body)
}
