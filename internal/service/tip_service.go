package service

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/model"
	"PortalPiloto/internal/pkg/consts"
	"PortalPiloto/internal/pkg/mongo"
	"PortalPiloto/internal/pkg/redis"
	"PortalPiloto/internal/pkg/security"
	"PortalPiloto/internal/pkg/util"
	"PortalPiloto/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

const tipCacheTTL = 5 * time.Minute

type TipService interface {
	SubmitTip(ctx context.Context, userID uint64, d *dto.TipCreateDTO) (*dto.TipDTO, error)
	GetTip(ctx context.Context, userID uint64, roles []string, id uint64) (*dto.TipDTO, error)
	ListApproved(ctx context.Context, page, pageSize int) (*dto.TipPageDTO, error)
	ListForModeration(ctx context.Context, d *dto.TipListDTO) (*dto.TipPageDTO, error)
	SetStatus(ctx context.Context, actorID uint64, id uint64, status string) error
	DeleteTip(ctx context.Context, userID uint64, roles []string, id uint64) error
	ModerationHistory(ctx context.Context, tipID uint64) ([]*mongo.ModerationLog, error)
}

type TipServiceImpl struct {
	tipRepo repository.TipRepo
	modLog  mongo.ModerationLogRepo
}

func NewTipService(tipRepo repository.TipRepo, modLog mongo.ModerationLogRepo) TipService {
	return &TipServiceImpl{
		tipRepo: tipRepo,
		modLog:  modLog,
	}
}

func (s *TipServiceImpl) SubmitTip(ctx context.Context, userID uint64, d *dto.TipCreateDTO) (*dto.TipDTO, error) {
	if d.Category != "" && !consts.SetCategories[d.Category] {
		return nil, ErrInvalidCategory
	}

	content := util.Sanitize(d.Content)
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	tip := &model.Tip{
		UserID:   userID,
		Title:    strings.TrimSpace(d.Title),
		Content:  content,
		Category: d.Category,
		ImageKey: d.ImageKey,
		Status:   consts.TipStatusPending,
	}
	if err := s.tipRepo.CreateTip(ctx, tip); err != nil {
		return nil, err
	}
	return tipToDTO(tip), nil
}

// GetTip aplica a regra de visibilidade: dica não aprovada só é visível
// para o autor ou para um admin.
func (s *TipServiceImpl) GetTip(ctx context.Context, userID uint64, roles []string, id uint64) (*dto.TipDTO, error) {
	tip, err := s.tipRepo.GetTip(ctx, id)
	if err != nil {
		return nil, err
	}
	if tip == nil {
		return nil, ErrTipNotFound
	}

	if tip.Status != consts.TipStatusApproved &&
		tip.UserID != userID &&
		!security.HasLevel(roles, consts.RoleAdmin) {
		return nil, ErrTipNotFound
	}
	return tipToDTO(tip), nil
}

func (s *TipServiceImpl) ListApproved(ctx context.Context, page, pageSize int) (*dto.TipPageDTO, error) {
	cacheable := page == 1 && pageSize == 20
	if cacheable {
		if cached, err := redis.GetValue(ctx, consts.PublicTipsKey); err == nil && cached != "" {
			var result dto.TipPageDTO
			if err = json.Unmarshal([]byte(cached), &result); err == nil {
				return &result, nil
			}
		}
	}

	tips, total, err := s.tipRepo.ListTips(ctx, consts.TipStatusApproved, page, pageSize)
	if err != nil {
		return nil, err
	}
	result := &dto.TipPageDTO{Total: total, Items: tipsToDTO(tips)}

	if cacheable {
		if payload, err := json.Marshal(result); err == nil {
			_ = redis.SetWithExpiration(ctx, consts.PublicTipsKey, payload, tipCacheTTL)
		}
	}
	return result, nil
}

func (s *TipServiceImpl) ListForModeration(ctx context.Context, d *dto.TipListDTO) (*dto.TipPageDTO, error) {
	if d.Status != "" &&
		d.Status != consts.TipStatusPending &&
		d.Status != consts.TipStatusApproved &&
		d.Status != consts.TipStatusRejected {
		return nil, ErrInvalidStatus
	}

	tips, total, err := s.tipRepo.ListTips(ctx, d.Status, d.Page, d.PageSize)
	if err != nil {
		return nil, err
	}
	return &dto.TipPageDTO{Total: total, Items: tipsToDTO(tips)}, nil
}

// SetStatus executa a decisão de moderação. Só há transição a partir de
// pendente; uma dica decidida permanece decidida.
func (s *TipServiceImpl) SetStatus(ctx context.Context, actorID uint64, id uint64, status string) error {
	if status != consts.TipStatusApproved && status != consts.TipStatusRejected {
		return ErrInvalidStatus
	}

	tip, err := s.tipRepo.GetTip(ctx, id)
	if err != nil {
		return err
	}
	if tip == nil {
		return ErrTipNotFound
	}
	if tip.Status != consts.TipStatusPending {
		return ErrTipAlreadyDecided
	}

	if err = s.tipRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	// trilha de auditoria é melhor esforço, a decisão já está persistida
	if s.modLog != nil {
		entry := &mongo.ModerationLog{
			TipID:      id,
			ActorID:    actorID,
			FromStatus: consts.TipStatusPending,
			ToStatus:   status,
			CreatedAt:  time.Now(),
		}
		if err = s.modLog.Append(ctx, entry); err != nil {
			log.ErrorContext(ctx, "Falha ao registrar decisão de moderação", "tip_id", id, "err", err)
		}
	}

	_ = redis.DeleteKey(ctx, consts.PublicTipsKey)
	return nil
}

func (s *TipServiceImpl) DeleteTip(ctx context.Context, userID uint64, roles []string, id uint64) error {
	tip, err := s.tipRepo.GetTip(ctx, id)
	if err != nil {
		return err
	}
	if tip == nil {
		return ErrTipNotFound
	}
	if tip.UserID != userID && !security.HasLevel(roles, consts.RoleAdmin) {
		return ErrPermissionDenied
	}

	if err = s.tipRepo.DeleteTip(ctx, id); err != nil {
		return err
	}
	_ = redis.DeleteKey(ctx, consts.PublicTipsKey)
	return nil
}

func (s *TipServiceImpl) ModerationHistory(ctx context.Context, tipID uint64) ([]*mongo.ModerationLog, error) {
	if s.modLog == nil {
		return []*mongo.ModerationLog{}, nil
	}
	return s.modLog.ListByTip(ctx, tipID, 50, 0)
}

func tipToDTO(tip *model.Tip) *dto.TipDTO {
	out := &dto.TipDTO{}
	_ = copier.Copy(out, tip)
	out.AuthorName = tip.User.Name
	return out
}

func tipsToDTO(tips []*model.Tip) []*dto.TipDTO {
	items := make([]*dto.TipDTO, 0, len(tips))
	for _, tip := range tips {
		items = append(items, tipToDTO(tip))
	}
	return items
}
