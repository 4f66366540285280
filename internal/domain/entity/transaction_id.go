package entity

import (
	"strings"

	coreport "github.com/ZizhengLiu2719/HSBC-FullStack-Assignment/internal/domain/port/core"
)

// Transaction ID format: TXN_<YYYYMMDD>_<6 uppercase alphanumerics>,
// e.g. TXN_20250118_A3F9K2. The random suffix space (36^6) is accepted as
// large enough that collisions are not retried; a duplicate insert fails
// loudly with ErrDuplicateTransaction instead.

const (
	transactionIDPrefix = "TXN"
	transactionIDChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffixLength        = 6
)

// GenerateTransactionID builds a new transaction identifier from the
// current date and a random suffix drawn from the given source.
func GenerateTransactionID(timeProvider coreport.TimeProvider, random coreport.RandomSource) string {
	dateStamp := timeProvider.Now().Format("20060102")

	var sb strings.Builder
	sb.Grow(len(transactionIDPrefix) + 1 + len(dateStamp) + 1 + suffixLength)
	sb.WriteString(transactionIDPrefix)
	sb.WriteByte('_')
	sb.WriteString(dateStamp)
	sb.WriteByte('_')
	for i := 0; i < suffixLength; i++ {
		sb.WriteByte(transactionIDChars[random.IntN(len(transactionIDChars))])
	}
	return sb.String()
}
