// Package services holds the application core: the invoice session,
// field ledger, validation and report services that implement the
// driving ports and call out through the driven ports.
//
// Nothing in this package touches the filesystem, the network or a
// terminal directly; adapters do that behind the port interfaces.
package services
