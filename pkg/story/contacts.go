package story

// Contact IDs referenced by triggers and the presentation layer.
const (
	ContactRicardo = "ricardo"
	ContactTiago   = "tiago"
	ContactMae     = "mae"
	ContactChefe   = "chefe"
	ContactUnknown = "desconhecido"
	ContactGhost   = "sofia_ghost"
)

// PIN codes hidden in the narrative content. The bank PIN leaks through the
// birthday note (15 de Maio), the gallery PIN through the timestamp of
// Ricardo's "último adeus" message (22:31).
const (
	BankPIN    = "1505"
	GalleryPIN = "2231"
)

// SeedContacts returns the five contacts present at startup, each with its
// scripted history. Returned values are fresh copies; callers own them.
func SeedContacts() []ContactSeed {
	return []ContactSeed{
		{
			ID:     ContactRicardo,
			Name:   "Ricardo ❤️",
			Status: "Visto há 10 min",
			Messages: []Message{
				NewMessage("Foste à farmácia levantar a receita?", false, "Domingo 19:00"),
				NewMessage("Ainda não. Não preciso daquilo.", true, "Domingo 19:30"),
				NewMessage("Sofia, por favor. O Dr. Luz disse que a interrupção causa alucinações.", false, "Domingo 20:00"),
				NewMessage("Estás a olhar para as paredes outra vez? Vem para a cama.", false, "Domingo 21:00"),
				NewMessage("Não são as paredes, Ricardo. É o que está dentro delas.", true, "Domingo 21:05"),
				NewMessage("Atende o telemóvel.", false, "Domingo 22:30"),
				NewMessage("Já disse que não vou assinar nada. Pára de insistir.", true, "Domingo 22:31"),
				NewMessage("Onde estás?", false, "Domingo 23:15"),
				NewMessage("Estou a ficar preocupado.", false, "Ontem 09:00"),
			},
		},
		{
			ID:     ContactTiago,
			Name:   "Tiago Eng. (Antigo Colega)",
			Status: "Offline",
			Messages: []Message{
				NewMessage("Eles limparam a minha secretária hoje. Nem me deixaram levar as plantas.", false, "3 dias atrás"),
				NewMessage("Tiago, lamento imenso... Foi por causa do relatório de densidade?", true, "3 dias atrás"),
				NewMessage("Foi por ter olhos na cara. O betão do Pilar 4 não secou, Sofia. Não secou porque tem 'coisas' lá dentro.", false, "3 dias atrás"),
				NewMessage("Vi a carrinha de 'Limpeza' da Clínica Luz a rondar o teu prédio. Eles sabem que tu tens a cópia.", false, "Ontem 18:00"),
				NewMessage("Estás a deixar-me paranoica.", true, "Ontem 18:02"),
				NewMessage("Não é paranoia se eles te perseguem. Ouve, o teu smartwatch.", false, "Ontem 18:05"),
				NewMessage("O que tem?", true, "Ontem 18:06"),
				NewMessage("Lembras-te da app 'MyTrack' que usámos para calibrar o terreno? Ativa o registo contínuo.", false, "Ontem 18:07"),
				NewMessage("Se o teu coração parar ou o sinal GPS for para onde não deve... fica a prova na cloud. É o teu seguro de vida.", false, "Ontem 18:08"),
				NewMessage("Ok. Vou ativar agora.", true, "Ontem 18:10"),
				NewMessage("Apaga esta conversa. Se eu não disser nada amanhã, foge.", false, "Ontem 18:12"),
			},
		},
		{
			ID:     ContactMae,
			Name:   "Mãe",
			Status: "Online",
			Messages: []Message{
				NewMessage("O pai diz que ouviu barulhos no teu quarto quando lá foi regar as plantas.", false, "3 dias atrás"),
				NewMessage("Mas não estava lá ninguém. A casa está vazia.", false, "3 dias atrás"),
				NewMessage("Mãe, eu tranquei tudo.", true, "3 dias atrás"),
				NewMessage("Tu tens de parar com essa ideia da 'geometria errada'. É só um prédio, filha.", false, "2 dias atrás"),
				NewMessage("Não vás à obra à noite. Tu sabes o que acontece quando ficas sem dormir.", false, "Ontem 09:00"),
				NewMessage("Liga-me.", false, "Ontem 09:30"),
			},
		},
		{
			ID:     ContactChefe,
			Name:   "Chefe Arq. (Nuno)",
			Status: "Ocupado",
			Messages: []Message{
				NewMessage("Recebi o teu relatório sobre o 'som'.", false, "Sexta 14:00"),
				NewMessage("Sofia, betão não grita. Tira uns dias de folga.", false, "Sexta 14:05"),
				NewMessage("Se voltares a assustar os investidores com histórias de fantasmas, estás despedida.", false, "Ontem 10:00"),
			},
		},
		{
			ID:     ContactUnknown,
			Name:   "Desconhecido",
			Status: "Offline",
			Messages: []Message{
				NewMessage("Estás a ver o reflexo ou estás a ver através do espelho?", false, "Segunda 03:00"),
			},
		},
	}
}

// GhostContact is the contact that appears after the endgame sequence. Its
// intro lines play automatically on first entry.
func GhostContact() ContactSeed {
	return ContactSeed{
		ID:          ContactGhost,
		Name:        "Eu (Sofia)",
		Status:      "Online",
		StartNodeID: node(NodeGhostIntro),
	}
}
