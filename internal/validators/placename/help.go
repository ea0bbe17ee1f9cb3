// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package placename

import "tarja-scan/internal/help"

// GetCheckInfo returns standardized information about the location check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "LOCATION",
		ShortDescription: "Validates location candidates against Brazilian states, cities, and address context",
		DetailedDescription: `The Location check decides whether a span tagged as a location names a real place.

Known Brazilian states (including two-letter abbreviations) and major cities accept directly. Unknown candidates accept only when an address indicator (rua, avenida, cep, bairro) appears in the surrounding context and the span has a plausible place shape. Deny lists reject abstract concepts, administrative vocabulary, and agency acronyms that taggers confuse with places.`,

		Patterns: []string{
			"State names and abbreviations (e.g., Minas Gerais, DF)",
			"Major city names (e.g., Brasília, Belo Horizonte)",
			"Street and neighborhood names with address context",
		},

		SupportedFormats: []string{
			"Brazilian place names, with or without diacritics",
			"Multi-word place names up to five words",
		},

		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "Deny List", Description: "Abstract concepts and agency acronyms are rejected outright", Weight: 30},
			{Name: "Gazetteer Match", Description: "Known states and cities accept directly", Weight: 40},
			{Name: "Address Context", Description: "Unknown places need a nearby address indicator", Weight: 30},
		},

		ConfigurationInfo: "The acceptance threshold for LOCATION candidates is configurable via pipeline.threshold_overrides.",

		Examples: []string{
			"tarja-scan -file document.txt -categories LOCATION",
		},
	}
}
