package utils

import (
	"fmt"
	"strings"
	"unicode"

	"libraria-backend/internal/domain"
)

const (
	patronIDLength = 6
	maxTitleLength = 200
)

// ValidatePatronID accepts exactly six ASCII digits. Every patron-facing
// operation runs this check before touching storage or the payment gateway.
func ValidatePatronID(patronID string) error {
	if len(patronID) != patronIDLength || !isAllDigits(patronID) {
		return fmt.Errorf("Invalid patron ID: must be exactly %d digits", patronIDLength)
	}
	return nil
}

// ValidateISBN accepts any non-empty all-digit string.
func ValidateISBN(isbn string) error {
	if isbn == "" || !isAllDigits(isbn) {
		return fmt.Errorf("Invalid ISBN: must contain only digits")
	}
	return nil
}

func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return fmt.Errorf("Title is required")
	}
	if len(trimmed) > maxTitleLength {
		return fmt.Errorf("Title must be no more than %d characters", maxTitleLength)
	}
	return nil
}

func ValidateAuthor(author string) error {
	if strings.TrimSpace(author) == "" {
		return fmt.Errorf("Author is required")
	}
	return nil
}

func ValidateTotalCopies(copies int32) error {
	if copies <= 0 {
		return fmt.Errorf("Total copies must be a positive integer")
	}
	return nil
}

// ValidateTransactionID checks the gateway's reserved "txn_" prefix.
func ValidateTransactionID(transactionID string) error {
	if !strings.HasPrefix(transactionID, domain.TransactionIDPrefix) {
		return fmt.Errorf("Invalid transaction ID format: must start with %q", domain.TransactionIDPrefix)
	}
	return nil
}

// ValidateRefundCents bounds a refund to (0, capCents]. The cap equals the
// late-fee ceiling, so no refund can ever exceed what was chargeable.
func ValidateRefundCents(amountCents, capCents int32) error {
	if amountCents <= 0 {
		return fmt.Errorf("Refund amount must be positive")
	}
	if amountCents > capCents {
		return fmt.Errorf("Refund amount exceeds maximum late fee of %s", FormatCents(capCents))
	}
	return nil
}

// FormatCents renders a cent amount as a dollar string, e.g. 1050 -> "$10.50".
func FormatCents(cents int32) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
