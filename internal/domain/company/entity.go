package company

import "time"

// Settings is the single-row company profile. It supplies the seller identity
// and payment details that invoice rendering falls back to when a bill does
// not override them.
type Settings struct {
	ID            string
	Name          string
	Address       string
	Phone         string
	Email         string
	GSTIN         string
	BankName      string
	AccountNumber string
	IFSCCode      string
	UPIID         string
	UpdatedAt     time.Time
}
