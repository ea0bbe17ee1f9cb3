// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package placename

// Words that taggers mislabel as locations in administrative documents.
// Stored folded (lowercase, no diacritics).
var neverLocations = toSet(
	// Greetings and closings
	"at.te", "atenciosamente", "cordialmente", "respeitosamente", "grata", "grato",
	// Verbs
	"venho", "solicito", "requeiro", "peco", "encaminho", "apresento",
	"informo", "comunico", "manifesto", "declaro", "afirmo", "ratifico",
	// Abstract and technical terms
	"inteligencia", "artificial", "digital", "letramento", "generativa",
	"demografico", "profissional", "publico", "setor", "perfil",
	// Administrative terms
	"termo", "acordo", "contrato", "convenio", "cooperacao", "parceria",
	"protocolo", "processo", "documento", "oficio", "memorando",
	// Agency acronyms
	"gdf", "sefaz", "detran", "pmdf", "cbmdf", "tjdft", "mpdft",
	"caesb", "novacap", "terracap", "codhab", "dftrans",
	// Abstract concepts
	"mestrado", "escola", "instituto", "atividade", "fiscal",
	"consumidor", "defesa", "orientador", "pesquisador", "pesquisadora",
	"ensino", "desenvolvimento", "pesquisa", "politicas", "governo",
)

// Technical vocabulary; a span made only of these is a concept, not a place.
var abstractWords = toSet(
	"artificial", "digital", "inteligencia", "letramento", "generativa",
	"politicas", "publicas", "privacidade", "seguranca", "tecnologia",
)

func toSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
