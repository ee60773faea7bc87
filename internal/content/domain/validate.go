package domain

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/gosimple/slug"
)

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return Invalid(field, "is required")
	}
	return nil
}

func maxLen(field, value string, n int) error {
	if utf8.RuneCountInString(value) > n {
		return Invalid(field, "must be at most %d characters", n)
	}
	return nil
}

func validSlug(value string) error {
	if err := required("slug", value); err != nil {
		return err
	}
	if !slug.IsSlug(value) {
		return Invalid("slug", "%q is not URL-safe (lowercase letters, digits and single hyphens)", value)
	}
	return nil
}

// optionalURL accepts "" or an absolute http(s) URL.
func optionalURL(field string, value *string) error {
	if value == nil || *value == "" {
		return nil
	}
	u, err := url.Parse(*value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Invalid(field, "must be an absolute http(s) URL")
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func trimAll(values ...*string) {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
	}
}

func trimOptional(v **string) {
	if *v == nil {
		return
	}
	s := strings.TrimSpace(**v)
	if s == "" {
		*v = nil
		return
	}
	*v = &s
}

// cleanList trims entries and drops blanks, keeping order.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func deriveSlug(current, title string) string {
	if current != "" {
		return current
	}
	return slug.Make(title)
}
