package reporting

import (
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/ads-report-api/infrastructure/repository"
)

// ThrottledError indica que a janela mínima entre gerações de resumo ainda
// não passou para a conta.
type ThrottledError struct {
	DaysRemaining int
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("Try again in %d day(s)", e.DaysRemaining)
}

// Throttle impõe o intervalo mínimo em dias entre gerações de resumo por
// conta, com base no registro persistido da última geração.
type Throttle struct {
	repo repository.ReportLogRepository
	days int
	now  func() time.Time
}

func NewThrottle(repo repository.ReportLogRepository, days int) *Throttle {
	return &Throttle{
		repo: repo,
		days: days,
		now:  time.Now,
	}
}

// Check retorna ThrottledError quando a última geração da conta é mais
// recente que a janela. Conta sem registro passa direto.
func (t *Throttle) Check(accountID string) error {
	last, err := t.repo.GetLastGeneratedAt(accountID)
	if err != nil {
		return err
	}

	if last == nil {
		return nil
	}

	elapsedDays := t.now().Sub(*last).Hours() / 24
	if elapsedDays >= float64(t.days) {
		return nil
	}

	remaining := int(math.Ceil(float64(t.days) - elapsedDays))
	if remaining < 1 {
		remaining = 1
	}

	return &ThrottledError{DaysRemaining: remaining}
}

// Record persiste o momento da geração, reiniciando a janela da conta.
func (t *Throttle) Record(accountID string) error {
	return t.repo.SaveGeneratedAt(accountID, t.now())
}
