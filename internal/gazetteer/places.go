// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gazetteer

// Brazilian state names and two-letter abbreviations.
var states = newSet(
	"acre", "alagoas", "amapa", "amazonas", "bahia", "ceara", "distrito federal",
	"espirito santo", "goias", "maranhao", "mato grosso", "mato grosso do sul",
	"minas gerais", "para", "paraiba", "parana", "pernambuco", "piaui",
	"rio de janeiro", "rio grande do norte", "rio grande do sul", "rondonia",
	"roraima", "santa catarina", "sao paulo", "sergipe", "tocantins",
	"ac", "al", "ap", "am", "ba", "ce", "df", "es", "go", "ma", "mt", "ms",
	"mg", "pa", "pb", "pr", "pe", "pi", "rj", "rn", "rs", "ro", "rr", "sc",
	"sp", "se", "to",
)

// The largest Brazilian cities by population.
var cities = newSet(
	"sao paulo", "rio de janeiro", "brasilia", "salvador", "fortaleza",
	"belo horizonte", "manaus", "curitiba", "recife", "goiania",
	"porto alegre", "belem", "guarulhos", "campinas", "sao luis",
	"sao goncalo", "maceio", "duque de caxias", "natal", "teresina",
	"campo grande", "nova iguacu", "sao bernardo do campo", "joao pessoa",
	"santo andre", "osasco", "jaboatao dos guararapes", "sao jose dos campos",
	"ribeirao preto", "uberlandia", "contagem", "sorocaba", "aracaju",
	"feira de santana", "cuiaba", "joinville", "juiz de fora", "londrina",
	"aparecida de goiania", "porto velho", "niteroi", "ananindeua", "serra",
	"campos dos goytacazes", "caxias do sul", "maua", "betim", "diadema",
	"jundiai", "carapicuiba", "piracicaba", "olinda", "bauru", "itaquaquecetuba",
	"sao vicente", "franca", "canoas", "cascavel", "petropolis", "vitoria",
	"ponta grossa", "blumenau", "limeira", "uberaba", "paulista", "suzano",
)

// Words that label an address or place in surrounding text.
var locationIndicators = newSet(
	"rua", "avenida", "av", "alameda", "travessa", "praca", "rodovia",
	"cidade", "estado", "municipio", "bairro", "quadra", "lote", "conjunto",
	"endereco", "cep", "residencia", "domicilio", "logradouro",
)
