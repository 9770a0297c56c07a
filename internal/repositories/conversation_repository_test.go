package repositories

import (
	"testing"
	"time"

	"sidequest/internal/database"
	"sidequest/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestConversationRepository(t *testing.T) {
	suite.Run(t, new(ConversationRepositorySuite))
}

type ConversationRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     ConversationRepositoryInterface
	messages MessageRepositoryInterface
	user     *models.User
}

func (s *ConversationRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewConversationRepository(s.db.DB)
	s.messages = NewMessageRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "chat@example.com")
}

func (s *ConversationRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ConversationRepositorySuite) TestConversationRepository_Create() {
	conversation := &models.Conversation{
		UserID: s.user.ID,
		Title:  "How much did I spend on groceries?",
	}

	err := s.repo.Create(conversation)
	s.NoError(err)
	s.NotEqual(uuid.Nil, conversation.ID)
}

func (s *ConversationRepositorySuite) TestConversationRepository_GetByID_ScopedToOwner() {
	conversation := database.CreateTestConversation(s.T(), s.db, s.user, "Budget talk")

	found, err := s.repo.GetByID(conversation.ID, s.user.ID)
	s.NoError(err)
	s.Equal("Budget talk", found.Title)

	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	_, err = s.repo.GetByID(conversation.ID, other.ID)
	s.Equal(ErrConversationNotFound, err)
}

func (s *ConversationRepositorySuite) TestConversationRepository_GetByUserID_OrderedByUpdatedAtDesc() {
	older := database.CreateTestConversation(s.T(), s.db, s.user, "Older")
	newer := database.CreateTestConversation(s.T(), s.db, s.user, "Newer")

	// Force a clear ordering
	s.NoError(s.db.Model(older).Update("updated_at", time.Now().Add(-time.Hour)).Error)
	s.NoError(s.db.Model(newer).Update("updated_at", time.Now()).Error)

	conversations, err := s.repo.GetByUserID(s.user.ID)
	s.NoError(err)
	s.Require().Len(conversations, 2)
	s.Equal("Newer", conversations[0].Title)
	s.Equal("Older", conversations[1].Title)
}

func (s *ConversationRepositorySuite) TestConversationRepository_Touch() {
	conversation := database.CreateTestConversation(s.T(), s.db, s.user, "Touched")
	s.NoError(s.db.Model(conversation).Update("updated_at", time.Now().Add(-time.Hour)).Error)

	s.NoError(s.repo.Touch(conversation.ID))

	refreshed, err := s.repo.GetByID(conversation.ID, s.user.ID)
	s.NoError(err)
	s.WithinDuration(time.Now(), refreshed.UpdatedAt, time.Minute)
}

func (s *ConversationRepositorySuite) TestConversationRepository_Delete() {
	conversation := database.CreateTestConversation(s.T(), s.db, s.user, "Doomed")

	err := s.repo.Delete(conversation.ID, s.user.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(conversation.ID, s.user.ID)
	s.Equal(ErrConversationNotFound, err)

	err = s.repo.Delete(conversation.ID, s.user.ID)
	s.Equal(ErrConversationNotFound, err)
}

func (s *ConversationRepositorySuite) TestMessageRepository_CreateAndList() {
	conversation := database.CreateTestConversation(s.T(), s.db, s.user, "Transcript")

	first := &models.Message{
		ConversationID: conversation.ID,
		Role:           models.MessageRoleUser,
		Content:        "What did I spend last month?",
	}
	s.NoError(s.messages.Create(first))

	second := &models.Message{
		ConversationID: conversation.ID,
		Role:           models.MessageRoleAssistant,
		Content:        "You spent $421.50 across 12 expenses.",
		CreatedAt:      first.CreatedAt.Add(time.Second),
	}
	s.NoError(s.messages.Create(second))

	transcript, err := s.messages.GetByConversationID(conversation.ID)
	s.NoError(err)
	s.Require().Len(transcript, 2)
	s.Equal(models.MessageRoleUser, transcript[0].Role)
	s.Equal(models.MessageRoleAssistant, transcript[1].Role)
}

func (s *ConversationRepositorySuite) TestMessageRepository_Create_InvalidRole() {
	conversation := database.CreateTestConversation(s.T(), s.db, s.user, "Bad role")

	message := &models.Message{
		ConversationID: conversation.ID,
		Role:           "system",
		Content:        "nope",
	}
	err := s.messages.Create(message)
	s.Error(err)
}
