// Package services implements the core application logic behind the
// driving ports: the hero catalogue (cache + merge) and the filter
// engine. Services depend on driven ports for all I/O.
package services
