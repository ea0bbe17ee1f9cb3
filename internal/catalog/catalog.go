// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package catalog holds the static category table shared by the ensemble
// voter, the overlap resolver, the document classifier, and the redactor.
package catalog

// Tier partitions categories by how much identifying power a single
// accepted candidate of that category carries.
type Tier int

const (
	// TierWeak attributes never identify a person by themselves.
	TierWeak Tier = iota
	// TierMedium identifiers identify only in combination with an anchor.
	TierMedium
	// TierStrong identifiers are sufficient alone.
	TierStrong
	// TierAnchor marks the person-name category used as combination pivot.
	TierAnchor
)

// String returns the tier name used in reports and logs.
func (t Tier) String() string {
	switch t {
	case TierStrong:
		return "strong"
	case TierMedium:
		return "medium"
	case TierAnchor:
		return "anchor"
	default:
		return "weak"
	}
}

// Category tags known to the pipeline.
const (
	CategoryCPF            = "BR_CPF"
	CategoryRG             = "BR_RG"
	CategoryCNPJ           = "BR_CNPJ"
	CategoryCEP            = "BR_CEP"
	CategoryPhone          = "BR_PHONE"
	CategoryGenericPhone   = "GENERIC_PHONE"
	CategoryEmail          = "EMAIL_ADDRESS"
	CategoryCreditCard     = "CREDIT_CARD"
	CategoryPerson         = "PERSON"
	CategoryLocation       = "LOCATION"
	CategoryHealthData     = "BR_HEALTH_DATA"
	CategoryPolitical      = "BR_POLITICAL_OPINION"
	CategoryUnion          = "BR_UNION_MEMBERSHIP"
	CategoryReligion       = "BR_RELIGION"
	CategoryBankAccount    = "BR_BANK_ACCOUNT"
	CategoryContractNumber = "BR_CONTRACT_NUMBER"
	CategoryVehiclePlate   = "BR_VEHICLE_PLATE"
	CategoryDateOfBirth    = "BR_DATE_OF_BIRTH"
	CategoryAge            = "BR_AGE"
	CategoryProfession     = "BR_PROFESSION"
	CategoryMaritalStatus  = "BR_MARITAL_STATUS"
	CategoryNationality    = "BR_NATIONALITY"
	CategoryVoterID        = "BR_VOTER_ID"
	CategoryDriverLicense  = "BR_DRIVER_LICENSE"
	CategoryWorkCard       = "BR_WORK_CARD"
	CategoryPisPasep       = "BR_PIS_PASEP"
	CategoryCNS            = "BR_CNS"
	CategoryPassport       = "BR_PASSPORT"
	CategoryReservista     = "BR_RESERVISTA"
	CategoryProfessionalID = "BR_PROFESSIONAL_REGISTRY"
	CategoryPixKey         = "BR_PIX_KEY"
	CategoryRenavam        = "BR_RENAVAM"
	CategorySchoolRecord   = "BR_SCHOOL_REGISTRATION"
	CategoryBenefitNumber  = "BR_BENEFIT_NUMBER"
	CategoryEthnicity      = "BR_ETHNICITY"
	CategorySexualOrient   = "BR_SEXUAL_ORIENTATION"
	CategoryGeolocation    = "BR_GEOLOCATION"
	CategoryUsername       = "BR_USERNAME"
	CategoryIPAddress      = "BR_IP_EXPLICIT"
)

// Entry describes one category: its tier, base acceptance threshold,
// overlap priority (higher wins), redaction template, and the context
// keywords that trigger a threshold boost when found near a candidate.
type Entry struct {
	Tier      Tier
	Threshold float64
	Priority  int
	Template  string
	Keywords  []string
}

// DefaultThreshold applies to categories without a tuned threshold.
const DefaultThreshold = 0.55

// UnknownTemplate masks categories the catalog does not know.
const UnknownTemplate = "[OCULTO]"

// Structurally validated formats use low thresholds because checksum and
// shape checks already suppress most false positives. Ambiguous categories
// resolved by gazetteers (names, places) sit higher.
var entries = map[string]Entry{
	CategoryCPF: {
		Tier: TierStrong, Threshold: 0.50, Priority: 100,
		Template: "XXX.XXX.XXX-XX",
		Keywords: []string{"cpf", "cadastro de pessoa física", "documento"},
	},
	CategoryCNPJ: {
		Tier: TierStrong, Threshold: 0.50, Priority: 95,
		Template: "XX.XXX.XXX/XXXX-XX",
		Keywords: []string{"cnpj", "empresa", "razão social"},
	},
	CategoryRG: {
		Tier: TierStrong, Threshold: 0.50, Priority: 90,
		Template: "XX.XXX.XXX-X",
		Keywords: []string{"rg", "registro geral", "identidade", "órgão emissor"},
	},
	CategoryEmail: {
		Tier: TierStrong, Threshold: 0.50, Priority: 85,
		Template: "[EMAIL]",
		Keywords: []string{"email", "e-mail", "correio eletrônico"},
	},
	CategoryCreditCard: {
		Tier: TierStrong, Threshold: 0.50, Priority: 85,
		Template: "XXXX XXXX XXXX XXXX",
		Keywords: []string{"cartão", "crédito", "débito", "fatura"},
	},
	CategoryBankAccount: {
		Tier: TierStrong, Threshold: 0.55, Priority: 80,
		Template: "[DADOS_BANCÁRIOS]",
		Keywords: []string{"conta", "agência", "banco", "pix"},
	},
	CategoryVoterID: {
		Tier: TierStrong, Threshold: 0.50, Priority: 88,
		Template: "[TÍTULO_ELEITOR]",
		Keywords: []string{"título", "eleitor", "eleitoral", "zona", "seção"},
	},
	CategoryDriverLicense: {
		Tier: TierStrong, Threshold: 0.55, Priority: 87,
		Template: "[CNH]",
		Keywords: []string{"cnh", "habilitação", "condutor", "detran"},
	},
	CategoryPassport: {
		Tier: TierStrong, Threshold: 0.60, Priority: 86,
		Template: "[PASSAPORTE]",
		Keywords: []string{"passaporte", "viagem"},
	},
	CategoryWorkCard: {
		Tier: TierStrong, Threshold: 0.55, Priority: 84,
		Template: "[CTPS]",
		Keywords: []string{"ctps", "carteira de trabalho", "série"},
	},
	CategoryPisPasep: {
		Tier: TierStrong, Threshold: 0.50, Priority: 83,
		Template: "[PIS/PASEP]",
		Keywords: []string{"pis", "pasep", "nis"},
	},
	CategoryCNS: {
		Tier: TierStrong, Threshold: 0.55, Priority: 82,
		Template: "[CNS]",
		Keywords: []string{"cns", "sus", "cartão nacional de saúde"},
	},
	CategoryReservista: {
		Tier: TierStrong, Threshold: 0.55, Priority: 81,
		Template: "[CERTIFICADO_RESERVISTA]",
		Keywords: []string{"reservista", "alistamento"},
	},
	CategoryBenefitNumber: {
		Tier: TierStrong, Threshold: 0.55, Priority: 79,
		Template: "[NÚMERO_BENEFÍCIO]",
		Keywords: []string{"benefício", "inss", "aposentadoria"},
	},
	CategoryPixKey: {
		Tier: TierStrong, Threshold: 0.55, Priority: 78,
		Template: "[CHAVE_PIX]",
		Keywords: []string{"pix", "chave", "transferência"},
	},
	CategoryCEP: {
		Tier: TierWeak, Threshold: 0.50, Priority: 75,
		Template: "XXXXX-XXX",
		Keywords: []string{"cep", "código postal", "endereço"},
	},
	CategoryPhone: {
		Tier: TierStrong, Threshold: 0.60, Priority: 70,
		Template: "(XX) XXXXX-XXXX",
		Keywords: []string{"telefone", "celular", "contato", "tel", "fone", "whatsapp"},
	},
	CategoryGenericPhone: {
		Tier: TierStrong, Threshold: 0.50, Priority: 60,
		Template: "(XX) XXXXX-XXXX",
		Keywords: []string{"telefone", "celular", "contato", "tel", "fone"},
	},
	CategoryVehiclePlate: {
		Tier: TierMedium, Threshold: 0.55, Priority: 65,
		Template: "XXX-XXXX",
		Keywords: []string{"placa", "veículo", "carro", "renavam"},
	},
	CategoryProfessionalID: {
		Tier: TierMedium, Threshold: 0.55, Priority: 68,
		Template: "[REGISTRO_PROFISSIONAL]",
		Keywords: []string{"oab", "crm", "crea", "conselho", "registro"},
	},
	CategoryRenavam: {
		Tier: TierMedium, Threshold: 0.55, Priority: 63,
		Template: "[RENAVAM]",
		Keywords: []string{"renavam", "veículo", "detran"},
	},
	CategoryHealthData: {
		Tier: TierMedium, Threshold: 0.55, Priority: 58,
		Template: "[DADO_SENSÍVEL]",
		Keywords: []string{"diagnóstico", "cid", "laudo", "atestado", "tratamento"},
	},
	CategoryPolitical: {
		Tier: TierMedium, Threshold: 0.55, Priority: 58,
		Template: "[DADO_SENSÍVEL]",
		Keywords: []string{"partido", "filiação", "filiado"},
	},
	CategoryUnion: {
		Tier: TierMedium, Threshold: 0.55, Priority: 58,
		Template: "[DADO_SENSÍVEL]",
		Keywords: []string{"sindicato", "sindical", "sindicalizado"},
	},
	CategoryReligion: {
		Tier: TierMedium, Threshold: 0.55, Priority: 58,
		Template: "[DADO_SENSÍVEL]",
		Keywords: []string{"religião", "igreja", "culto"},
	},
	CategorySexualOrient: {
		Tier: TierMedium, Threshold: 0.55, Priority: 58,
		Template: "[DADO_SENSÍVEL]",
		Keywords: []string{"orientação sexual"},
	},
	CategoryEthnicity: {
		Tier: TierWeak, Threshold: 0.55, Priority: 57,
		Template: "[DADO_SENSÍVEL]",
		Keywords: []string{"etnia", "raça", "cor"},
	},
	CategorySchoolRecord: {
		Tier: TierWeak, Threshold: 0.55, Priority: 52,
		Template: "[MATRÍCULA_ESCOLAR]",
		Keywords: []string{"matrícula", "escola", "aluno", "aluna"},
	},
	CategoryContractNumber: {
		Tier: TierMedium, Threshold: 0.55, Priority: 55,
		Template: "[CONTRATO/PROTOCOLO]",
		Keywords: []string{"contrato", "processo", "matrícula"},
	},
	CategoryDateOfBirth: {
		Tier: TierWeak, Threshold: 0.55, Priority: 50,
		Template: "DD/MM/AAAA",
		Keywords: []string{"nascimento", "nascido", "nascida", "data de nascimento"},
	},
	CategoryPerson: {
		Tier: TierAnchor, Threshold: 0.70, Priority: 45,
		Template: "[NOME]",
		Keywords: []string{"nome", "sr.", "sra.", "senhor", "senhora", "solicitante", "requerente"},
	},
	CategoryLocation: {
		Tier: TierWeak, Threshold: 0.65, Priority: 40,
		Template: "[LOCAL]",
		Keywords: []string{"endereço", "rua", "avenida", "mora", "reside", "bairro"},
	},
	CategoryAge: {
		Tier: TierWeak, Threshold: 0.55, Priority: 35,
		Template: "[IDADE]",
		Keywords: []string{"anos", "idade"},
	},
	CategoryProfession: {
		Tier: TierWeak, Threshold: 0.55, Priority: 35,
		Template: "[PROFISSÃO]",
		Keywords: []string{"profissão", "cargo", "ocupação"},
	},
	CategoryMaritalStatus: {
		Tier: TierWeak, Threshold: 0.55, Priority: 35,
		Template: "[ESTADO_CIVIL]",
		Keywords: []string{"estado civil"},
	},
	CategoryNationality: {
		Tier: TierWeak, Threshold: 0.55, Priority: 35,
		Template: "[NACIONALIDADE]",
		Keywords: []string{"nacionalidade", "natural de"},
	},
	CategoryGeolocation: {
		Tier: TierWeak, Threshold: 0.55, Priority: 38,
		Template: "[COORDENADAS]",
		Keywords: []string{"coordenadas", "latitude", "longitude"},
	},
	CategoryUsername: {
		Tier: TierWeak, Threshold: 0.55, Priority: 37,
		Template: "[USUÁRIO]",
		Keywords: []string{"usuário", "login", "acesso"},
	},
	CategoryIPAddress: {
		Tier: TierWeak, Threshold: 0.55, Priority: 36,
		Template: "IP XXX.XXX.XXX.XXX",
		Keywords: []string{"ip", "conexão"},
	},
}

// maxThreshold is the highest configured base threshold; unknown categories
// inherit it so they never accept more easily than any known category.
var maxThreshold = func() float64 {
	m := DefaultThreshold
	for _, e := range entries {
		if e.Threshold > m {
			m = e.Threshold
		}
	}
	return m
}()

// Lookup returns the entry for category. Unknown categories get a
// conservative default: weak tier, the highest configured threshold, the
// generic mask, and no priority.
func Lookup(category string) Entry {
	if e, ok := entries[category]; ok {
		return e
	}
	return Entry{
		Tier:      TierWeak,
		Threshold: maxThreshold,
		Priority:  0,
		Template:  UnknownTemplate,
	}
}

// Known reports whether category is in the catalog.
func Known(category string) bool {
	_, ok := entries[category]
	return ok
}

// Categories returns all catalog category tags.
func Categories() []string {
	out := make([]string, 0, len(entries))
	for c := range entries {
		out = append(out, c)
	}
	return out
}

// Priority returns the overlap priority for category.
func Priority(category string) int {
	return Lookup(category).Priority
}

// TierOf returns the tier for category.
func TierOf(category string) Tier {
	return Lookup(category).Tier
}

// Template returns the redaction mask for category.
func Template(category string) string {
	return Lookup(category).Template
}
