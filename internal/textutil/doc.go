// Package textutil provides small text helpers shared by lead intake and
// terminal rendering.
//
// The helpers cover person-name casing, US phone number normalization, and
// display truncation for table cells. Phone numbers are stored as bare digit
// strings (with an optional leading country code stripped) and formatted for
// display on the way out.
package textutil
