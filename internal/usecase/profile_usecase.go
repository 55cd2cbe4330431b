package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-counseling-care/internal/converter"
	"go-counseling-care/internal/delivery/dto"
	"go-counseling-care/internal/domain/entity"
	"go-counseling-care/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	// UpdateProfile applies the provided fields and records an audit entry
	// describing what changed.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type profileUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
	profileChangeRepo  repository.ProfileChangeRepository
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	profileChangeRepo repository.ProfileChangeRepository,
) ProfileUsecase {
	return &profileUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
		profileChangeRepo:  profileChangeRepo,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if user.IsPatient() {
		profile, err := u.patientProfileRepo.FindByUserID(db, userID)
		if err != nil {
			u.log.Warnf("Failed to find patient profile: %+v", err)
			return nil, err
		}
		user.PatientProfile = profile
	}

	return converter.UserToResponse(user), nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	var changed []string

	if req.FullName != "" && req.FullName != user.FullName {
		user.FullName = req.FullName
		changed = append(changed, "full_name")
	}
	if req.Specialty != nil && *req.Specialty != user.Specialty {
		user.Specialty = *req.Specialty
		changed = append(changed, "specialty")
	}

	if len(changed) > 0 {
		if err := u.userRepo.Update(tx, user); err != nil {
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}
	}

	if user.IsPatient() {
		profile, err := u.patientProfileRepo.FindByUserID(tx, userID)
		if err != nil {
			u.log.Warnf("Failed to find patient profile: %+v", err)
			return nil, err
		}
		if profile == nil {
			return nil, ErrPatientProfileNotFound
		}
		if req.EmergencyContact != nil && *req.EmergencyContact != profile.EmergencyContact {
			profile.EmergencyContact = *req.EmergencyContact
			if err := u.patientProfileRepo.Update(tx, profile); err != nil {
				u.log.Warnf("Failed to update patient profile: %+v", err)
				return nil, err
			}
			changed = append(changed, "emergency_contact")
		}
		user.PatientProfile = profile
	}

	if len(changed) > 0 {
		change := &entity.ProfileChange{
			UserID:      userID,
			Description: fmt.Sprintf("Updated %s", strings.Join(changed, ", ")),
		}
		if err := u.profileChangeRepo.Create(tx, change); err != nil {
			u.log.Warnf("Failed to record profile change: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}
