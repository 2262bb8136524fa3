package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mood is the detected emotional state of a user message.
type Mood string

const (
	MoodNeutral    Mood = "neutral"
	MoodAnxious    Mood = "anxious"
	MoodSad        Mood = "sad"
	MoodFrustrated Mood = "frustrated"
	MoodHopeful    Mood = "hopeful"
	MoodConfident  Mood = "confident"
)

// ChatMessage is one user/assistant exchange inside a conversation context.
type ChatMessage struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ContextID   uuid.UUID
	SessionID   string
	UserMessage string
	AIResponse  string
	Mood        Mood
	Technique   TechniqueID
	CreatedAt   time.Time
}

// ConversationContext groups chat messages into one thread for
// history assembly and summarization.
type ConversationContext struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	Summary      string
	Themes       []string
	MessageCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MemoryItemKind classifies extracted conversation memory.
type MemoryItemKind string

const (
	MemoryFact       MemoryItemKind = "fact"
	MemoryGoal       MemoryItemKind = "goal"
	MemoryPreference MemoryItemKind = "preference"
	MemoryConcern    MemoryItemKind = "concern"
)

// MemoryItem is a durable fact extracted from a conversation by the
// summarization pass.
type MemoryItem struct {
	ID        uuid.UUID
	ContextID uuid.UUID
	Kind      MemoryItemKind
	Content   string
	Relevance float64 // 0..1, decays as the conversation moves on
	CreatedAt time.Time
}

// TranscriptEntry is one role/content pair of assembled chat history,
// in the shape LLM providers consume.
type TranscriptEntry struct {
	Role    string // "user" or "assistant"
	Content string
}
