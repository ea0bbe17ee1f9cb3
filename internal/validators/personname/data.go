// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

// Deny lists curated from administrative documents where taggers
// repeatedly mislabelled these words as person names. All entries are
// stored folded (lowercase, no diacritics).

var neverNames = toSet(
	// Verbs common in administrative requests
	"venho", "solicito", "requeiro", "peco", "encaminho", "apresento",
	"informo", "comunico", "manifesto", "declaro", "afirmo", "ratifico",
	"pergunto", "questiono", "indago", "consulto", "verifico", "confirmo",
	"gostaria", "quero", "preciso", "necessito", "desejo", "pretendo",
	// Generic role nouns
	"servidor", "servidora", "cidadao", "cidada", "solicitante", "requerente",
	"interessado", "contribuinte", "usuario", "beneficiario", "funcionario",
	// Administrative terms
	"processo", "protocolo", "documento", "artigo", "lei", "decreto", "portaria",
	"oficio", "memorando", "despacho", "parecer", "termo", "acordo", "contrato",
	"convenio", "convencao", "cooperacao", "parceria", "emenda", "empenho",
	"inciso", "validador", "gerador", "disposto", "edital", "concurso",
	"registrado", "registros", "anexo", "ref", "fato", "destaque",
	// Sectors and abstractions
	"artificial", "digital", "demografico", "profissional", "publico",
	"generativa", "inteligencia", "letramento", "perfil", "setor",
	"gestao", "governanca", "administracao", "infraestrutura", "tic",
	"aplicativo", "programa", "integridade", "monitoramento",
	"interesse", "ajuda", "ouvidoria", "canal",
	"assunto", "esbulho", "texto", "superior", "juvenil",
	// Government and institutions
	"governo", "distrito", "federal", "mestrado",
	"instituto", "brasileiro", "ensino", "desenvolvimento", "pesquisa",
	"enap", "gdf", "ministerio", "prefeitura", "inss", "sus", "datasus",
	"ibge", "ibama", "funai", "incra", "anvisa", "anatel", "aneel", "ans",
	"anac", "anp", "petrobras", "eletrobras", "correios", "bndes",
	"colegio", "faculdade", "universidade", "academia", "educacao",
	"curso", "graduacao", "pos-graduacao",
	// Status words
	"aberto", "fechado", "pendente", "concluido", "ativo", "inativo",
	// Generic titles
	"gerencia", "diretoria", "coordenacao", "assessoria", "secretaria",
	"governador", "prefeito", "diretor", "coordenador",
	// Misc
	"carreira", "departamento", "divisao",
	"favor", "aluna", "moro", "data", "valor", "identidade", "ola", "oi",
	"prezados", "prezadas", "grato", "grata", "atenciosamente", "cordialmente",
)

// Phrases that mark institutions even when fragmented across a span.
var institutionalKeywords = []string{
	"escola", "universidade", "faculdade", "colegio", "instituto",
	"centro universitario", "centro de ensino",
	"politicas publicas", "ministerio", "secretaria de",
	"prefeitura", "governo do", "tribunal de",
	"banco de dados", "gestao", "governanca", "administracao",
	"ouvidoria", "infraestrutura",
}

// Single tokens that are never names even though they pass structure checks.
var singleWordDeny = toSet(
	"ola", "oi", "id", "texto", "superior", "juvenil", "civil",
	"tarde", "box", "advogados", "sou", "inquilina", "sic",
	"referente", "administrativa", "gama", "oab", "ltda",
	"empenho", "emenda", "inciso", "validador", "canal", "geral",
)

// Prepositions and auxiliaries; a span dominated by these is prose.
var grammaticalWords = toSet(
	"de", "da", "do", "das", "dos", "para", "com", "que", "se", "em",
	"no", "na", "por", "como", "ser", "uma", "um", "os", "as", "ao",
	"pelo", "pela",
)

// Verbs and action nouns that never appear inside a real name.
var actionWords = toSet(
	"saber", "entrar", "contato", "constar", "acesso", "informar",
	"fornecer", "obter", "solicitar", "receber", "possuir", "ter",
	"haver", "fazer", "dar", "pedir", "enviar", "apresentar",
	"encaminhar", "chamo",
)

// Words that start a sentence fragment, not a name.
var leadingWordDeny = toSet(
	"gostaria", "solicito", "preciso", "venho", "quero", "pedir", "fazer",
	"ter", "saber", "informar", "caso", "tendo", "ao", "em", "para", "com",
	"de", "sem", "por", "sobre", "como", "quando", "estou", "sou", "foi",
	"houve", "possui", "todas", "isso", "favor", "pelo", "a", "o", "e",
	"mas", "ja", "ainda", "apos", "antes", "durante", "pela", "pelos", "pelas",
)

// Names conventionally written fully uppercase in forms.
var uppercaseNameExceptions = toSet("joao", "jose")

func toSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
