// SPDX-License-Identifier: Apache-2.0

package models

import (
	"fmt"
	"strings"
)

// FileType selects the export format for activity downloads. The numeric
// values are the Coros API's fileType codes.
type FileType int

const (
	CSV FileType = 0
	GPX FileType = 1
	KML FileType = 2
	TCX FileType = 3
	FIT FileType = 4
)

var fileTypeNames = map[FileType]string{
	CSV: "csv",
	GPX: "gpx",
	KML: "kml",
	TCX: "tcx",
	FIT: "fit",
}

// String returns the lower-case format name ("fit", "tcx", ...).
func (f FileType) String() string {
	if name, ok := fileTypeNames[f]; ok {
		return name
	}
	return fmt.Sprintf("filetype(%d)", int(f))
}

// Ext returns the filename extension for the format, including the dot.
func (f FileType) Ext() string {
	return "." + f.String()
}

// ParseFileType converts a case-insensitive format name into a FileType.
func ParseFileType(s string) (FileType, error) {
	for t, name := range fileTypeNames {
		if strings.EqualFold(s, name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown activity file type %q", s)
}

// FileTypeNames lists the accepted format names, for flag help text.
func FileTypeNames() []string {
	return []string{"fit", "tcx", "gpx", "kml", "csv"}
}
