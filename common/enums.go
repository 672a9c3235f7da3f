// Package common holds enums shared by configuration and command line.
package common

//go:generate go tool go-enum --marshal --names --nocase

// Requested output type.
// ENUM(json, yaml, xml, tree)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtJson:
		return ".json"
	case OutputFmtYaml:
		return ".yaml"
	case OutputFmtXml:
		return ".xml"
	case OutputFmtTree:
		return ".txt"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
