package story

import "github.com/google/uuid"

// GhostEmail is the one-shot email Sofia sent to herself before descending.
// It is inserted at most once per playthrough.
func GhostEmail() Email {
	return Email{
		ID:      uuid.New().String(),
		Sender:  "Eu (Sofia)",
		Subject: "Log de Frequência - Setor 4",
		Date:    "Agora",
		Body: `Análise de áudio da Cave (Setor 4).

1. Não há eco. O som não bate nas paredes, é absorvido. (Impossível em betão armado).
2. As leituras térmicas mostram calor a vir de dentro dos pilares. 37 graus Celsius. Temperatura humana.
3. Não é um cemitério, Ricardo. Eles não estão a esconder corpos mortos.

O betão está a agir como uma membrana.
Vou descer hoje para instalar o backdoor nas câmaras.
Se eu estiver certa, a 'interferência' nas imagens não é erro digital. É o edifício a tentar comunicar.`,
	}
}
