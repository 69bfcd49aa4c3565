package messaging

import (
	"context"
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/inpulse/inpulse-api/infrastructure/repository"
	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/pkg/log"
	"github.com/inpulse/inpulse-api/pkg/utils"
)

var (
	ErrConversationNotFound = errors.New("conversa não encontrada")
	ErrParticipantRequired  = errors.New("participante é obrigatório")
	ErrSelfConversation     = errors.New("não é possível iniciar uma conversa consigo mesmo")
	ErrParticipantNotFound  = errors.New("participante não encontrado")
	ErrMissingMessageData   = errors.New("conversa e conteúdo são obrigatórios")
)

type Messenger interface {
	ListConversations(ctx context.Context, userID string) ([]*domain.ConversationSummary, error)
	GetConversation(ctx context.Context, userID, conversationID string) (*domain.ConversationDetail, error)
	// StartConversation devolve o id da conversa e false quando ela já existia
	StartConversation(ctx context.Context, userID, participantID string) (string, bool, error)
	SendMessage(ctx context.Context, userID string, req *domain.SendMessageRequest) (*domain.Message, error)
}

type Service struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	generateID  func() (string, error)
}

func NewService(messageRepo repository.MessageRepository, userRepo repository.UserRepository) Messenger {
	return &Service{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		generateID:  utils.GenerateID,
	}
}

func (s *Service) ListConversations(ctx context.Context, userID string) ([]*domain.ConversationSummary, error) {
	conversations, err := s.messageRepo.ListConversations(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar conversas")
	}

	if conversations == nil {
		conversations = make([]*domain.ConversationSummary, 0)
	}

	return conversations, nil
}

// GetConversation só revela a conversa a quem participa dela
func (s *Service) GetConversation(ctx context.Context, userID, conversationID string) (*domain.ConversationDetail, error) {
	if err := s.ensureParticipant(ctx, conversationID, userID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar mensagens")
	}
	if messages == nil {
		messages = make([]*domain.Message, 0)
	}

	participant, err := s.messageRepo.GetOtherParticipant(ctx, conversationID, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar participante")
	}

	return &domain.ConversationDetail{
		ID:          conversationID,
		Messages:    messages,
		Participant: participant,
	}, nil
}

func (s *Service) StartConversation(ctx context.Context, userID, participantID string) (string, bool, error) {
	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return "", false, ErrParticipantRequired
	}
	if participantID == userID {
		return "", false, ErrSelfConversation
	}

	existing, err := s.messageRepo.FindDirectConversation(ctx, userID, participantID)
	if err != nil {
		return "", false, pkgerrors.Wrap(err, "erro ao buscar conversa")
	}
	if existing != "" {
		return existing, false, nil
	}

	participant, err := s.userRepo.GetUserByID(ctx, participantID)
	if err != nil {
		return "", false, pkgerrors.Wrap(err, "erro ao buscar participante")
	}
	if participant == nil {
		return "", false, ErrParticipantNotFound
	}

	id, err := s.generateID()
	if err != nil {
		return "", false, pkgerrors.Wrap(err, "erro ao gerar id da conversa")
	}

	conversation := &domain.Conversation{ID: id}
	if err := s.messageRepo.CreateConversation(ctx, conversation, []string{userID, participantID}); err != nil {
		return "", false, pkgerrors.Wrap(err, "erro ao criar conversa")
	}

	log.ForContext(ctx).WithField("conversation_id", id).Info("messaging: conversa iniciada")
	return id, true, nil
}

func (s *Service) SendMessage(ctx context.Context, userID string, req *domain.SendMessageRequest) (*domain.Message, error) {
	if req == nil || req.ConversationID == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrMissingMessageData
	}

	if err := s.ensureParticipant(ctx, req.ConversationID, userID); err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao gerar id da mensagem")
	}

	message := &domain.Message{
		ID:             id,
		ConversationID: req.ConversationID,
		SenderID:       userID,
		Content:        req.Content,
		Type:           domain.MessageTypeText,
	}
	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao enviar mensagem")
	}

	return message, nil
}

func (s *Service) ensureParticipant(ctx context.Context, conversationID, userID string) error {
	ok, err := s.messageRepo.IsParticipant(ctx, conversationID, userID)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao verificar participante")
	}
	if !ok {
		return ErrConversationNotFound
	}
	return nil
}
