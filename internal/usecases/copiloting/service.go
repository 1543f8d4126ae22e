package copiloting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/growzzy/growzzy-os-api/infrastructure/integrator/gemini"
	"github.com/growzzy/growzzy-os-api/infrastructure/repository"
	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// ErrEmptyConversation indica um request sem nenhuma mensagem
var ErrEmptyConversation = errors.New("conversation has no messages")

// Resposta enlatada usada quando o modelo está indisponível, para o chat
// do dashboard nunca ficar mudo
const fallbackAdvice = "Não consegui falar com o assistente agora. Enquanto isso, vale revisar: " +
	"campanhas com ROAS abaixo de 1 e gasto alto merecem pausa ou ajuste de público; " +
	"as de ROAS acima de 2 são candidatas a aumento de orçamento; " +
	"e criativos com CTR em queda costumam indicar fadiga de anúncio."

type CopilotService interface {
	Chat(request *domain.CopilotRequest) (*domain.CopilotResponse, error)
}

type Service struct {
	geminiClient       gemini.Client
	campaignRepository repository.CampaignRepository
}

func NewService(geminiClient gemini.Client, campaignRepository repository.CampaignRepository) CopilotService {
	return &Service{
		geminiClient:       geminiClient,
		campaignRepository: campaignRepository,
	}
}

// Chat encaminha a conversa ao modelo com o contexto atual de campanhas
// embutido no system prompt. Falha do modelo devolve o conselho enlatado
// com os detalhes do erro, nunca um erro para o handler.
func (s *Service) Chat(request *domain.CopilotRequest) (*domain.CopilotResponse, error) {
	if request == nil || len(request.Messages) == 0 {
		return nil, ErrEmptyConversation
	}

	systemPrompt := s.buildSystemPrompt()
	conversation := flattenConversation(request.Messages)

	logrus.WithField("messages", len(request.Messages)).Debug("copilot: encaminhando conversa ao modelo")

	answer, err := s.geminiClient.GenerateContent(systemPrompt, conversation)
	if err != nil {
		logrus.WithError(err).Error("copilot: erro na chamada ao modelo")
		return &domain.CopilotResponse{
			Response: fallbackAdvice,
			Details:  err.Error(),
		}, nil
	}

	return &domain.CopilotResponse{Response: answer}, nil
}

// buildSystemPrompt monta o prompt do assistente com o snapshot das
// campanhas. Erro ao carregar campanhas não impede o chat, só deixa o
// contexto vazio.
func (s *Service) buildSystemPrompt() string {
	var sb strings.Builder

	sb.WriteString("Você é o copiloto de marketing do GROWZZY OS. ")
	sb.WriteString("Responda em português, de forma direta e acionável, sobre mídia paga, ")
	sb.WriteString("otimização de campanhas, criativos e funil de vendas. ")
	sb.WriteString("Use os dados de campanha abaixo quando forem relevantes para a pergunta.\n\n")

	campaigns, err := s.campaignRepository.List(nil)
	if err != nil {
		logrus.WithError(err).Warn("copilot: erro ao carregar contexto de campanhas")
		return sb.String()
	}

	if len(campaigns) == 0 {
		sb.WriteString("Nenhuma campanha cadastrada no momento.\n")
		return sb.String()
	}

	sb.WriteString("Campanhas atuais:\n")
	for _, c := range campaigns {
		sb.WriteString(fmt.Sprintf(
			"- %s (%s, %s): gasto %.2f, receita %.2f, ROAS %.2f, %d conversões, CTR %.2f%%, CPC %.2f\n",
			c.Name, c.Platform, c.Status, c.Spend, c.Revenue, c.ROAS(), c.Conversions, c.CTR, c.CPC,
		))
	}

	return sb.String()
}

// flattenConversation serializa o histórico no formato role: content,
// preservando a ordem das mensagens
func flattenConversation(messages []domain.CopilotMessage) string {
	var sb strings.Builder
	for _, message := range messages {
		sb.WriteString(message.Role)
		sb.WriteString(": ")
		sb.WriteString(message.Content)
		sb.WriteString("\n")
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("copilot: conversa montada %s", utils.PrettyJson(messages))
	}

	return sb.String()
}
