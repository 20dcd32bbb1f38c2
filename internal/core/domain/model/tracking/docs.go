// Package tracking contains the append-only tracking history of an order:
// one Entry per status change, recording the message and the acting party.
package tracking
