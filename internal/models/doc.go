// Package models defines the domain types for school trip administration:
// trips, participants and their enrollment lifecycle, debts and payments,
// social-fund requests, budget lines, uploaded documents and the institution
// letterhead configuration.
//
// All monetary amounts are integer euro cents. Conversion to euros happens
// only at the presentation layer (templates and PDFs).
package models
