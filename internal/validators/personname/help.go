// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

import "tarja-scan/internal/help"

// GetCheckInfo returns standardized information about the person name check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "PERSON",
		ShortDescription: "Validates person-name candidates against curated Brazilian name lists",
		DetailedDescription: `The Person check decides whether a span tagged as a person name is actually one.

Validation runs as ordered layers. Deny lists reject administrative vocabulary, institution names, and government acronyms that taggers repeatedly mislabel as people. Structural rules reject acronyms, long phrases, prose fragments dominated by prepositions, and spans without any uppercase letter. Surviving candidates are resolved against gazetteers of common Brazilian given names and surnames: a single token must be a known given name, two tokens need a resolving component on either side, and compound names need a given name plus surname or two resolving components, skipping connectives (de, da, dos).`,

		Patterns: []string{
			"Single given name (e.g., Maria)",
			"Given name + surname (e.g., Antonio Costa)",
			"Compound names with connectives (e.g., Julio Cesar da Rosa)",
		},

		SupportedFormats: []string{
			"Brazilian Portuguese names, with or without diacritics",
			"Compound names up to six words",
		},

		ConfidenceFactors: []help.ConfidenceFactor{
			{Name: "Deny List", Description: "Administrative vocabulary and institutions are rejected outright", Weight: 35},
			{Name: "Structure", Description: "Acronyms, prose fragments, and uncapitalized spans are rejected", Weight: 30},
			{Name: "Gazetteer Resolution", Description: "Components must resolve against curated name lists", Weight: 35},
		},

		ConfigurationInfo: "The acceptance threshold for PERSON candidates is configurable via pipeline.threshold_overrides.",

		Examples: []string{
			"tarja-scan -file document.txt -categories PERSON",
		},
	}
}
