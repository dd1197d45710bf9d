package story

import "time"

// Cave scene IDs. The adventure is a strict FSM: every transition is a pure
// function of current scene + choice.
const (
	SceneBoot     = "boot"
	SceneIntro    = "intro"
	SceneFork     = "fork"
	SceneRouteA   = "route_a"
	SceneRouteB   = "route_b"
	SceneChase    = "chase"
	SceneHide     = "hide"
	SceneRun      = "run"
	SceneCore     = "core"
	SceneClimax   = "climax"
	SceneEscape   = "ending_escape"
	SceneUpload   = "ending_upload"
	SceneCollapse = "ending_collapse"
)

// Resolution severity tags consumed by the presentation layer.
const (
	SeverityGrey  = "grey"
	SeverityGreen = "green"
	SeverityRed   = "red"
)

// CaveChoice is one option shown after a scene's lines finish.
type CaveChoice struct {
	Label  string
	Target string
}

// CaveResolution is the terminal payload of an ending scene, shown after the
// fade to black completes.
type CaveResolution struct {
	Message  string
	Severity string
}

// CaveScene owns an ordered list of lines and either choices, an automatic
// transition, or an ending resolution. Tense scenes use the fast typewriter.
type CaveScene struct {
	ID    string
	Lines []string
	Tense bool

	Choices []CaveChoice

	// AutoLines reveals lines back to back with no tap in between. Only the
	// boot sequence does this; outcome scenes (hide/run) still reveal on tap.
	AutoLines bool

	// AutoNext fires after all lines finish, AutoDelay later.
	AutoNext  string
	AutoDelay time.Duration

	Ending *CaveResolution
}

// Terminal reports whether the scene is an ending.
func (s CaveScene) Terminal() bool { return s.Ending != nil }

// CaveScenes returns the full scene table keyed by ID. ending_collapse is
// authored but has no inbound transition.
func CaveScenes() map[string]CaveScene {
	return map[string]CaveScene{
		SceneBoot: {
			ID: SceneBoot,
			Lines: []string{
				"> INICIANDO SISTEMA DE SEGURANÇA KRONOS v.4.0...",
				"> KERNEL DE MEMÓRIA CORROMPIDO.",
				"> RECUPERANDO SETOR: \"SOFIA_MENDES.DAT\"",
				"> Sincronização Neural: 100%.",
			},
			AutoLines: true,
			AutoNext:  SceneIntro,
			AutoDelay: time.Second,
		},
		SceneIntro: {
			ID: SceneIntro,
			Lines: []string{
				"Tu não estás no teu corpo.",
				"Onde deviam estar as tuas mãos, sentes apenas frio.",
				"Onde deviam estar os teus pulmões, sentes pó de pedra.",
				"O ar é pesado. Cheira a humidade antiga e a cobre queimado.",
				"Uma voz ecoa na tua cabeça...",
				"VOZ (SOFIA): \"Eles... não me deixam... dormir.\"",
			},
			Choices: []CaveChoice{
				{Label: ">> PING: LOCALIZAR SOFIA", Target: SceneFork},
				{Label: ">> DIAGNÓSTICO: AMBIENTE", Target: SceneFork},
			},
		},
		SceneFork: {
			ID: SceneFork,
			Lines: []string{
				"> ACESSO CONCEDIDO.",
				"O corredor à tua frente estica-se infinitamente.",
				"Luzes de emergência piscam num ritmo cardíaco.",
				"TUM-TUM. TUM-TUM.",
				"VOZ (SOFIA): \"O Dr. Luz disse que o prédio não falava.\"",
				"VOZ (SOFIA): \"Mas ele tem fome.\"",
				"Chegas a uma bifurcação na memória da Sofia.",
			},
			Choices: []CaveChoice{
				{Label: ">> ROTA A: CHEIRO A ANTISSÉTICO", Target: SceneRouteA},
				{Label: ">> ROTA B: SOM DE MÁQUINAS", Target: SceneRouteB},
			},
		},
		SceneRouteA: {
			ID: SceneRouteA,
			Lines: []string{
				"O chão muda para azulejos brancos imaculados.",
				"Mas estão cobertos de um líquido viscoso.",
				"Encontras um relatório médico no chão.",
				"Paciente: Sofia M | Sintomas: Paranoia.",
				"Sentes uma picada fantasma no braço.",
				"Estavam a preparar o corpo dela para a fundação.",
				"VOZ (SOFIA): \"O remédio fazia as paredes aproximarem-se.\"",
			},
			Choices: []CaveChoice{
				{Label: ">> AVANÇAR", Target: SceneChase},
			},
		},
		SceneRouteB: {
			ID: SceneRouteB,
			Lines: []string{
				"O ambiente fica escuro.",
				"Vês capacetes de proteção enterrados no chão como crânios.",
				"Encontras a ferramenta de nível do Tiago.",
				"Está dobrada ao meio, derretida.",
				"Ouve-se o som de uma betoneira... mas o som é húmido.",
				"VOZ (SOFIA): \"O Tiago encontrou dentes na mistura...\"",
			},
			Choices: []CaveChoice{
				{Label: ">> AVANÇAR", Target: SceneChase},
			},
		},
		SceneChase: {
			ID:    SceneChase,
			Tense: true,
			Lines: []string{
				"> ALERTA: ENTIDADE HOSTIL DETETADA",
				"Passos. Pesados. Lentos.",
				"Botas de couro a arrastar em vidro.",
				"Ele não corre. Ele não precisa.",
				"Na rede neural, ele consegue cheirar o teu medo.",
				"VOZ (SOFIA): \"FOGE!\"",
			},
			Choices: []CaveChoice{
				{Label: ">> ESCONDER", Target: SceneHide},
				{Label: ">> CORRER", Target: SceneRun},
			},
		},
		SceneHide: {
			ID: SceneHide,
			Lines: []string{
				"> Desligas os processos.",
				"> Escuro absoluto.",
				"Os passos passam por ti...",
				"Param...",
				"E continuam.",
				"Sobreviveste. Bateria: 90%.",
			},
			AutoNext:  SceneCore,
			AutoDelay: 1500 * time.Millisecond,
		},
		SceneRun: {
			ID: SceneRun,
			Lines: []string{
				"> Corres pelos cabos de fibra ótica.",
				"Sentes o calor do processador.",
				"Ele tenta agarrar o teu sinal...",
				"Mas és mais rápido.",
				"Escapas. Sistema sobreaquecido.",
			},
			AutoNext:  SceneCore,
			AutoDelay: 1500 * time.Millisecond,
		},
		SceneCore: {
			ID: SceneCore,
			Lines: []string{
				"O Pilar Mestre.",
				"Não há paredes aqui.",
				"Apenas betão pulsante e bioluminescência.",
				"Ela está à tua frente. Fundida com a estrutura.",
				"Fios de cobre entram pelas suas têmporas.",
				"VOZ (SOFIA): \"Eu sou a fundação. Eu seguro os 40 andares.\"",
				"*O telemóvel vibra violentamente*",
				"BANG. BANG. BANG.",
				"Ele encontrou-te.",
				"VOZ (SOFIA): \"Posso fazer uma coisa por ti. Só uma.\"",
			},
			Choices: []CaveChoice{
				{Label: ">> ESCUTAR SOFIA", Target: SceneClimax},
			},
		},
		SceneClimax: {
			ID: SceneClimax,
			Lines: []string{
				"A porta está a ceder.",
				"*O metal range*",
			},
			Choices: []CaveChoice{
				{Label: ">> /OPEN_DOORS (SACRIFÍCIO)", Target: SceneEscape},
				{Label: ">> /UPLOAD_DATA (VERDADE)", Target: SceneUpload},
			},
		},
		SceneEscape: {
			ID: SceneEscape,
			Lines: []string{
				"> DRENAR ENERGIA DO NÚCLEO?",
				"> CONFIRMADO.",
				"Silvo hidráulico.",
				"As portas do lobby abrem-se lá em baixo.",
				"VOZ (SOFIA): \"Ah... tu queres viver. Corre.\"",
				"O telemóvel morre.",
				"Estás no escuro, mas a saída está aberta.",
				"[ FIM: O SOBREVIVENTE COBARDE ]",
			},
			Ending: &CaveResolution{
				Message:  "RELATÓRIO KRONOS:\nSUJEITO 04 ESCAPOU.\nESTADO MENTAL: COMPROMETIDO.",
				Severity: SeverityGrey,
			},
		},
		SceneUpload: {
			ID: SceneUpload,
			Lines: []string{
				"> UPLOAD PARA SERVIDOR GLOBAL...",
				"A porta abre-se. Ele entra.",
				"VOZ (SOFIA): \"Obrigada.\"",
				"> UPLOAD: 100%.",
				"Ele esmaga o telemóvel.",
				"Mas tu já não estás lá.",
				"A tua mente está na rede.",
				"[ FIM: O MÁRTIR DE BETÃO ]",
			},
			Ending: &CaveResolution{
				Message:  "> INTEGRAÇÃO COMPLETA.\n> BEM-VINDA À REDE, SOFIA.",
				Severity: SeverityGreen,
			},
		},
		SceneCollapse: {
			ID: SceneCollapse,
			Ending: &CaveResolution{
				Message:  "SINAL PERDIDO\n----------------\nSEM DADOS DE TELEMETRIA\nESTRUTURA COLAPSADA",
				Severity: SeverityRed,
			},
		},
	}
}
