package models

import "strings"

// MaskName keeps the first letter of each word: "Ana Garcia" -> "A*** G***".
func MaskName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(w)
		words[i] = string(r[0]) + "***"
	}
	return strings.Join(words, " ")
}

// MaskPhone keeps the last two digits.
func MaskPhone(phone string) string {
	r := []rune(phone)
	if len(r) <= 2 {
		return "***"
	}
	return "***" + string(r[len(r)-2:])
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

// MaskContact hides the personal fields of a request unless it was unlocked
// for the viewer. Owners and admins read through the unmasked path instead.
func (r *Request) MaskContact() {
	r.Customer.Name = MaskName(r.Customer.Name)
	r.Customer.Phone = MaskPhone(r.Customer.Phone)
	r.Customer.Email = MaskEmail(r.Customer.Email)
}
