// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gazetteer

// Given names common in Brazil, per IBGE demographic data, including
// frequent diminutives. Stored folded (lowercase, no diacritics).
var firstNames = newSet(
	// Masculine
	"joao", "jose", "antonio", "francisco", "carlos", "paulo", "pedro",
	"lucas", "luiz", "marcos", "luis", "gabriel", "rafael", "daniel", "marcelo",
	"bruno", "eduardo", "felipe", "guilherme", "rodrigo", "fernando", "gustavo",
	"leonardo", "caio", "vitor", "henrique", "thiago", "diego", "ricardo",
	"anderson", "andre", "sergio", "roberto", "alexandre", "renan", "vinicius",
	"julio", "cesar", "adriano", "fabio", "marcio", "leandro", "mauricio",
	"renato", "wallace", "wellington", "matheus", "nicolas", "igor", "otavio",
	"raul", "samuel", "isaac", "theo", "arthur", "miguel", "davi", "heitor",
	"bernardo", "lorenzo", "enzo", "ryan", "ian", "pietro", "benicio",
	"edson", "walter", "pablo", "lucio", "zeca", "chico", "binho", "nino", "tito",
	// Feminine
	"maria", "ana", "francisca", "antonia", "adriana", "juliana", "marcia",
	"fernanda", "patricia", "aline", "tatiana", "cristina", "leticia", "vanessa",
	"camila", "amanda", "bruna", "carla", "claudia", "daniela", "eliane",
	"fabiana", "gabriela", "helena", "isabela", "jessica", "julia", "larissa",
	"luciana", "michele", "natalia", "paula", "priscila", "renata", "roberta",
	"sabrina", "silvia", "simone", "tania", "viviane", "alice", "beatriz",
	"carolina", "cecilia", "clara", "debora", "eduarda", "emanuela", "fatima",
	"gisele", "giovana", "heloisa", "iris", "jade", "lais", "livia", "lorena",
	"manuela", "marina", "melissa", "nicole", "olivia", "pietra", "rafaela",
	"raquel", "regina", "rosangela", "sandra", "sophia", "valentina", "yasmin",
	"conceicao", "aparecida", "socorro", "penha", "gloria", "graca", "lourdes",
	"luiza", "aura", "ruth", "cassandra",
	// Diminutives
	"beto", "betina", "carlinhos", "duda", "juju", "lulu", "nando", "rafa",
	"tati", "vivi", "gabi", "fabi", "dani", "cris", "mari", "leti", "nath",
	"bia", "carol", "caca",
)

// Surnames common in Brazil (roughly the top 200 by frequency).
var surnames = newSet(
	"silva", "santos", "oliveira", "souza", "sousa", "rodrigues", "ferreira",
	"alves", "pereira", "lima", "gomes", "costa", "ribeiro", "martins",
	"carvalho", "rocha", "almeida", "nascimento", "araujo",
	"melo", "barbosa", "cardoso", "reis", "castro", "andrade", "pinto",
	"moreira", "freitas", "fernandes", "dias", "cavalcanti", "monteiro",
	"mendes", "barros", "batista", "tavares", "sampaio", "braga", "cruz",
	"simoes", "mota", "franco", "garcia", "miranda", "guimaraes", "neves",
	"correa", "teixeira", "pires", "rosa", "nunes", "borges",
	"camargo", "valle", "marques", "vasconcelos", "farias", "ramos", "bezerra",
	"cunha", "santiago", "aguiar", "rezende", "moura", "nogueira", "machado",
	"sales", "azevedo", "duarte", "macedo", "vargas", "jesus", "paiva",
	"magalhaes", "medeiros", "coelho", "xavier", "lourenco",
	"aragao", "siqueira", "fonseca", "goncalves",
	"leite", "brito", "amaral", "bueno", "dantas", "godoy", "barreto",
	"pessoa", "matos", "fogaca", "ramalho", "delgado", "santana",
	"bastos", "viana", "toledo", "avila", "porto", "lacerda",
	"salgado", "leal", "menezes", "moraes", "morais", "figueiredo",
	"mesquita", "rangel", "queiroz", "novais", "vaz", "pacheco",
	"furtado", "cardozo", "muniz", "fontes", "rossi", "goulart", "ventura",
	"brandao", "medina", "vidal", "nery", "coutinho",
	"domingues", "lemos", "esteves", "serra", "gonzaga", "assuncao",
	"silveira", "vilela", "fagundes", "guedes", "arruda",
	"caetano", "carneiro", "bento", "amorim", "guerra", "escobar", "jardim",
	"sequeira", "vale", "felix", "maia", "lara", "padilha", "torres",
	"serrano", "neto", "filho", "junior", "sobrinho", "segundo", "terceiro",
	"villar", "bispo", "goes", "peixoto", "cabral", "camara",
	"vasques", "varela", "espinosa", "horta", "crespo", "bessa",
	"cortes", "seabra", "lobato", "portela", "afonso", "saraiva",
	"cordeiro", "barroso", "guerreiro", "nobre", "galvao",
	"prado", "pestana", "paredes", "trindade", "bernardes", "gama",
	"lopes", "campos", "vieira", "soares", "cavalcante",
)

// Connectives joining parts of Portuguese compound names.
var connectives = newSet("de", "da", "do", "das", "dos", "e")
