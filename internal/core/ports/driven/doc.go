// Package driven holds the ports the core calls out through.
//
// Services depend on InputSource, SourceFactory and ConfigStore; the
// connectors and config adapters implement them. Like the driving ports,
// this package imports nothing but domain.
package driven
