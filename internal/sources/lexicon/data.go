// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package lexicon

import "tarja-scan/internal/catalog"

// attributePhrase is a literal phrase searched case-insensitively in the
// document. Accented and unaccented spellings are listed separately because
// matching happens on the raw text, not on a folded copy.
type attributePhrase struct {
	phrase string
	score  float64
}

var attributePhrases = map[string][]attributePhrase{
	catalog.CategoryHealthData: {
		{"diabetes", 0.70},
		{"hipertensão", 0.70},
		{"hipertensao", 0.70},
		{"câncer", 0.70},
		{"cancer", 0.70},
		{"depressão", 0.70},
		{"depressao", 0.70},
		{"deficiência", 0.70},
		{"deficiencia", 0.70},
		{"laudo médico", 0.75},
		{"laudo medico", 0.75},
		{"tratamento médico", 0.70},
		{"tratamento medico", 0.70},
		{"internação", 0.65},
		{"internacao", 0.65},
	},
	catalog.CategoryReligion: {
		{"católico", 0.70},
		{"catolico", 0.70},
		{"católica", 0.70},
		{"catolica", 0.70},
		{"evangélico", 0.70},
		{"evangelico", 0.70},
		{"evangélica", 0.70},
		{"evangelica", 0.70},
		{"espírita", 0.70},
		{"espirita", 0.70},
		{"umbanda", 0.70},
		{"candomblé", 0.70},
		{"candomble", 0.70},
		{"testemunha de jeová", 0.75},
		{"testemunha de jeova", 0.75},
	},
	catalog.CategoryPolitical: {
		{"filiado ao partido", 0.75},
		{"filiada ao partido", 0.75},
		{"opinião política", 0.70},
		{"opiniao politica", 0.70},
		{"partido político", 0.65},
		{"partido politico", 0.65},
		{"militante", 0.65},
	},
	catalog.CategoryUnion: {
		{"filiação sindical", 0.75},
		{"filiacao sindical", 0.75},
		{"sindicalizado", 0.70},
		{"sindicalizada", 0.70},
		{"sindicalista", 0.70},
		{"sindicato", 0.65},
	},
	catalog.CategoryEthnicity: {
		{"indígena", 0.70},
		{"indigena", 0.70},
		{"quilombola", 0.70},
		{"afrodescendente", 0.70},
		{"pardo", 0.65},
		{"parda", 0.65},
		{"origem étnica", 0.75},
		{"origem etnica", 0.75},
	},
	catalog.CategorySexualOrient: {
		{"homossexual", 0.70},
		{"heterossexual", 0.70},
		{"bissexual", 0.70},
		{"transexual", 0.70},
		{"orientação sexual", 0.75},
		{"orientacao sexual", 0.75},
	},
	catalog.CategoryProfession: {
		{"advogado", 0.65},
		{"advogada", 0.65},
		{"médico", 0.65},
		{"medico", 0.65},
		{"médica", 0.65},
		{"medica", 0.65},
		{"engenheiro", 0.65},
		{"engenheira", 0.65},
		{"professor", 0.65},
		{"professora", 0.65},
		{"servidor público", 0.65},
		{"servidor publico", 0.65},
		{"servidora pública", 0.65},
		{"servidora publica", 0.65},
		{"aposentado", 0.65},
		{"aposentada", 0.65},
		{"autônomo", 0.65},
		{"autonomo", 0.65},
	},
	catalog.CategoryMaritalStatus: {
		{"união estável", 0.70},
		{"uniao estavel", 0.70},
		{"casado", 0.65},
		{"casada", 0.65},
		{"solteiro", 0.65},
		{"solteira", 0.65},
		{"divorciado", 0.65},
		{"divorciada", 0.65},
		{"viúvo", 0.65},
		{"viuvo", 0.65},
		{"viúva", 0.65},
		{"viuva", 0.65},
	},
	catalog.CategoryNationality: {
		{"brasileiro", 0.65},
		{"brasileira", 0.65},
		{"português", 0.65},
		{"portugues", 0.65},
		{"portuguesa", 0.65},
		{"estrangeiro", 0.65},
		{"estrangeira", 0.65},
		{"naturalizado", 0.65},
		{"naturalizada", 0.65},
	},
}
