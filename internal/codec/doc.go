// Package codec converts between the compact member token carried in
// approval links (First_Last_ROMAN) and domain.MemberRecord.
//
// All functions are pure: no I/O, no shared state.
package codec
