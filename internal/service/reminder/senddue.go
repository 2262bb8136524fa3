package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// sendBatchSize bounds one worker pass.
const sendBatchSize = 100

// SendDue mails every due reminder and advances its schedule, returning
// the number of emails sent. The batch is claimed inside a transaction
// with row locks, so concurrent workers never double-send; a failed send
// is logged and the reminder stays due for the next pass.
func (s *Service) SendDue(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	sent := 0

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		due, err := s.reminders.Due(txCtx, now, sendBatchSize)
		if err != nil {
			return fmt.Errorf("list due: %w", err)
		}

		for _, rem := range due {
			user, err := s.users.GetByID(txCtx, rem.UserID)
			if err != nil {
				s.log.WarnContext(txCtx, "reminder user lookup failed",
					slog.String("reminder_id", rem.ID.String()),
					slog.String("error", err.Error()))
				continue
			}
			if user.Anonymized {
				// deleted accounts keep no address to mail; push the
				// schedule forward so the row stops coming up due
				if err := s.reminders.MarkSent(txCtx, rem.ID, now.Add(rem.Frequency.Interval())); err != nil {
					return fmt.Errorf("park reminder: %w", err)
				}
				continue
			}

			if err := s.mail.SendPracticeReminder(txCtx, user.Email, user.DisplayName, techniqueName(rem.Technique)); err != nil {
				s.log.ErrorContext(txCtx, "reminder send failed",
					slog.String("reminder_id", rem.ID.String()),
					slog.String("error", err.Error()))
				continue
			}
			if err := s.reminders.MarkSent(txCtx, rem.ID, now.Add(rem.Frequency.Interval())); err != nil {
				return fmt.Errorf("mark sent: %w", err)
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("reminder.SendDue: %w", err)
	}

	if sent > 0 {
		s.log.InfoContext(ctx, "practice reminders sent", slog.Int("count", sent))
	}
	return sent, nil
}
