package story

// Note is one entry in the notes app. The birthday note leaks the bank PIN.
type Note struct {
	Title   string
	Content string
}

func Notes() []Note {
	return []Note{
		{"Lista Compras", "Leite\nPão\nComida para o gato\nPilhas"},
		{"Ideias Projeto", "Falar com o Eng. Santos sobre as fundações da zona norte."},
		{"🎂", "15 de Maio!!!\nFinalmente 28 anos! 🎉\nNão esquecer de reservar o restaurante para o jantar."},
		{"Séries", "Ver o último ep de Dark.\nComeçar aquela nova da HBO."},
	}
}

// Transaction is one line of the bank statement.
type Transaction struct {
	Title      string
	Amount     string
	Date       string
	Suspicious bool
}

const BankBalance = "15.772,31 €"

func Transactions() []Transaction {
	return []Transaction{
		{"Supermercado Pingo", "- 45,20 €", "22 Out", false},
		{"Netflix", "- 11,99 €", "20 Out", false},
		{"CLÍNICA PRIVADA 'LUZ'", "- 850,00 €", "18 Out", true},
		{"SpyShop Online", "- 420,50 €", "15 Out", true},
		{"SafeBox Central (Aluguer)", "- 150,00 €", "12 Out", false},
		{"Caridade 'Mãos Abertas'", "- 200,00 €", "10 Out", false},
		{"KRONOS HOLDINGS", "+ 5.000,00 €", "05 Out", true},
	}
}

// Album is one gallery folder. The locked one hides the secret photo behind
// the gallery PIN.
type Album struct {
	Name   string
	Count  int
	Locked bool
}

func Albums() []Album {
	return []Album{
		{"Câmara", 124, false},
		{"WhatsApp", 450, false},
		{"Instagram", 89, false},
		{"Oculto", 1, true},
	}
}

// SecretPhoto is the evidence hidden in the locked album.
const (
	SecretPhotoName    = "IMG_0415.jpg"
	SecretPhotoCaption = "A cave da obra, 03:12. No canto direito, meio fundido com a parede, um vulto com capacete. Parado. A olhar para a câmara."
)

// TrackerActivity is one row of the fitness tracker history. The encrypted
// recording unlocks after the ghost email is read.
type TrackerActivity struct {
	Title      string
	Date       string
	Distance   string
	Suspicious bool
}

func TrackerActivities() []TrackerActivity {
	return []TrackerActivity{
		{"Corrida Matinal", "22 Out - 07:00", "5.2 km", false},
		{"Caminhada", "21 Out - 18:30", "2.1 km", false},
		{"Atividade Desconhecida", "23 Out - 03:15", "---", true},
		{"Corrida", "20 Out - 07:15", "4.8 km", false},
	}
}

// Tracker playback beats shown while the suspicious recording plays.
func TrackerPlayback() []string {
	return []string{
		"A LIGAR AO DISPOSITIVO...",
		"SINAL ENCONTRADO: PULSEIRA_SOFIA",
		"A REPRODUZIR GRAVAÇÃO 23 OUT - 03:15",
		"BPM: 142... 156... 171...",
		"MOVIMENTO ATÍPICO",
		"DESCIDA DETETADA: -12m ABAIXO DO NÍVEL DA RUA",
		"BPM: 0",
		"SINAL PERDIDO",
	}
}
