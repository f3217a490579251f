package main

import (
	"math/rand/v2"
	"slices"
)

// wordPool supplies non-repeating random draws from a fixed corpus.
type wordPool struct {
	words []string
}

// newWordPool deduplicates the corpus so a single draw can never hand
// out the same word twice.
func newWordPool(words []string) *wordPool {
	seen := make(map[string]bool, len(words))
	unique := make([]string, 0, len(words))

	for _, word := range words {
		if seen[word] {
			continue
		}
		seen[word] = true
		unique = append(unique, word)
	}

	return &wordPool{words: unique}
}

func (p *wordPool) size() int {
	return len(p.words)
}

// draw returns n distinct words in random order.
func (p *wordPool) draw(n int) ([]string, error) {
	if n > len(p.words) {
		return nil, ErrInsufficientWordPool
	}

	shuffled := slices.Clone(p.words)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:n], nil
}

// The stock corpus, carried over from the original party set.
var defaultWords = []string{
	"PROGRAMADOR", "ENCANADOR", "ESTETICISTA", "MATEMÁTICO", "QUÍMICO",
	"PSICÓLOGO", "ADMINISTRADOR", "ZELADOR", "ELETRICISTA", "JORNALISTA",
	"DESIGNER", "DANÇARINO", "MÚSICO", "TRADUTOR", "POLÍTICO", "YOUTUBER",
	"PORTEIRO", "GARI", "LIXEIRO", "FLORISTA", "ORÉGANO", "GORDURA", "PROTEÍNA",
	"CEREAL", "FARINHA", "CACAU", "GLICOSE", "CEVADA", "MALTE", "MILHO",
	"SÓDIO", "ALHO", "CORANTE", "VITAMINA", "VINAGRE", "MEL", "FIBRA", "MOLHO",
	"LACTOSE", "GENGIBRE", "FERMENTO", "PAÇOCA", "AÇAÍ", "EMPADÃO", "MANDIOCA",
	"MAMONA", "SUBMARINO", "TRATOR", "ÔNIBUS", "LANCHA", "JETSKI", "TRICICLO",
	"RETROVISOR", "ZEPPELIN", "CAMÃO", "MOTOCICLETA", "PATINETE", "PANDA",
	"ANTA", "ARRAIA", "ATUM", "BAIA", "CUBARATA", "BESOURO", "BURRO", "CACATUA",
	"CARNEIRO", "CAMELO", "CEGONHA", "CASCAVEL", "CENTOPEIA", "CIGARRA",
	"CUPIM", "DROMEDÁRIO", "GORILA", "HIENA", "JAVALI", "LAGARTIXA", "LULU",
	"MARITACA", "MORCEGO", "ORNITORRINCO", "PIOLHO", "RINOCERONTE", "SIRIATA",
	"TUCANO", "VAGA-LUME", "PANELA", "ESCORREDOR", "SABONETE", "VARAL", "RODO",
	"PREGADOR", "CORTINA", "LENÇOL", "TESOURA", "GUARDANAPO", "POLTRONA",
	"FILTRO", "ASPIRADOR", "COLCHÃO", "ABAJUR", "TAPETE", "ARMÁRIO",
	"GELADEIRA", "TOALHA", "TORRADEIRA", "LIQUIDIFICADOR", "CHALEIRA",
	"LIXEIRA", "IMPRESSORA", "FOGÃO", "JAPÃO", "COREIA", "CHILE", "TURQUIA",
	"EQUADOR", "ISRAEL", "SUÍÇA", "IRAQUE", "ANGOLA", "BÉLGICA", "HAITI",
	"SUÉCIA", "HARPA", "VIOLINO", "CHOCALHO", "PANDEIRO", "GAITA", "SAXOFONE",
	"ALAÚDE", "BANJO", "UKULELE", "ACORDEÃO", "FUNK", "FORRÓ", "ROCK",
	"ELETRÔNICA", "SERTANEJO", "CLÁSSICO", "GÓTICO", "INDIE", "JAZZ", "PAGODE",
	"REGGAE", "FREVO", "ALUMÍNIO", "ESTANHO", "NÍQUEL", "BRONZE", "CARVÃO",
	"ENXOFRE", "GRAFITE", "PRATA", "RUBI", "ESMERALDA", "URÂNIO", "SAFIRA",
	"PLATINA", "RAIVA", "HOSTIL", "TRISTEZA", "MEDO", "FRUSTRAÇÃO", "AVERSÃO",
	"ALEGRIA", "AFETO", "CONFIANÇA", "CIÚME", "COMPAIXÃO", "EMPATIA", "APATIA",
	"SURPRESA", "ESPERANÇA", "PAIXÃO", "APEGO", "ACEITAÇÃO", "ADMIRAÇÃO",
	"CALMA", "CARISMA", "CONFORTO", "COVARDE", "CORAGEM", "DEVOTO", "FÉ",
	"HONRA", "PIEDADE", "SIMPATIA", "ACNE", "ALCOOLISMO", "ALZHEIMER",
	"AMNÉSIA", "ANOREXIA", "ANSIEDADE", "ASMA", "CÂNCER", "CATAPORA",
	"DIABETES", "DEPRESSÃO", "DENGUE", "ENXAQUECA", "GASTRITE", "HIPERTENSÃO",
	"LABIRINTITE", "LEPTOSPIROSE", "PANDEMIA", "RESFRIADO", "RINITE",
	"SONAMBULISMO", "TENDINITE", "TOSSE", "ABDÔMEN", "ARTICULAÇÃO", "AXILA",
	"BEXIGA", "BOCHECHA", "CALCANHAR", "CÍLIOS", "CINTURA", "COTOVELO", "COXA",
	"ESTÔMAGO", "GARGANTA", "MÚSCULO", "QUEIXO", "TESTA", "UMBIGO", "VEIA",
	"SINUCA", "ATLETISMO", "AUTOMOBILISMO", "BASQUETE", "CROSSFIT", "ESGRIMA",
	"ESPORTS", "FISICULTURISMO", "HIPISMO", "JUDÔ", "KARATÊ", "NATAÇÃO",
	"PATINAÇÃO", "TÊNIS", "VÔLEI", "XADREZ", "DOMINÓ", "PARKOUR", "PIPA",
	"PAINTBALL", "SURF", "YOGA", "JAQUETA", "CASACO", "PALETÓ", "CUECA",
	"CARTEIRA", "TERNO", "UNGARO", "PIJAMA", "CAMISOLA", "BAINHA", "BANDANA",
	"MAIÔ", "LINGERIE", "ESTILO", "MODA", "BRACELETE", "UNIFORME", "JUVENTUDE",
	"RIQUEZA", "POBREZA", "SAÚDE", "ILUSÃO", "VELHICE", "PESO", "COMPRIMENTO",
	"ALTURA", "LARGURA", "PASSAGEM", "FINGIMENTO", "COLORIDO", "ESPERAR",
	"REGIME", "COMUNIDADE", "CARAVANA", "HORDA", "LEGIÃO", "TIME", "TURMA",
	"PLATEIA", "CIANO", "BEGE", "CARMESIM", "CASTANHO", "DAMASCO", "ROSA",
	"SÉPIA", "LOIRO", "AZUL", "AMARELO", "ROXO", "JANEIRO", "FEVEREIRO",
	"MARÇO", "ABRIL", "MAIO", "JUNHO", "JULHO", "AGOSTO", "SETEMBRO", "OUTUBRO",
	"NOVEMBRO", "DEZEMBRO", "CINZEIRO", "DOCUMENTO", "GILETE", "AGENDA",
	"CIGARRO", "LAPISEIRA", "PEDREGUILHO", "KATANA", "GLOBO", "ANTENA",
	"BIGORNA", "BISTURI", "CHUPETA", "DENTADURA", "DODÔ", "DETERGENTE",
	"DICIONÁRIO", "ENXADA", "ESTÁTUA", "FLECHA", "GAIOLA", "GIBI", "HIDRANTE",
	"IMÃ", "ISCA", "KARAOKÊ", "MOCHILA", "PIERCING", "TIJOLO", "TROFÉU", "URNA",
	"PROCESSADOR", "TECLADO", "PENDRIVE", "SUCATA", "SOLDAGEM", "BINÁRIO",
	"GABINETE", "ARTIFICIAL", "DISQUETE", "DVD", "GPS", "NOTEBOOK", "HEADSET",
	"CRÉDITO", "WIFI", "WEBCAM", "BUDA", "JESUS", "MAOMÉ", "TESLA",
	"MICHELANGELO", "KENNEDY", "SAMURAI", "XUXA", "PELÉ", "SEREIA", "LAMPIÃO",
	"ÍNDIO", "ODIN", "CUCA", "ZEUS", "ARES", "AFRODITE", "ATENA", "INFERNO",
	"FRANKENSTEIN", "MICKEY", "COWBOY", "DRÁCULA", "GODZILLA", "BARBIE",
	"TARZAN", "GOKU", "VIADUTO", "CRUZAMENTO", "TERRAÇO", "PLANÍCIE", "ESGOTO",
	"FLAMENGO", "CHELSEA", "CRUZEIRO", "FORTALEZA", "INTERNACIONAL", "VASCO",
	"PALMEIRAS", "CORINTHIANS", "BOTAFOGO", "BARCELONA", "MILAN", "MADRID",
	"MANCHESTER", "LIVERPOOL", "PORTO",
}
