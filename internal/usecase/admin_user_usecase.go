package usecase

import (
	"context"

	"go-counseling-care/internal/converter"
	"go-counseling-care/internal/delivery/dto"
	"go-counseling-care/internal/domain/entity"
	"go-counseling-care/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminUserUsecase interface {
	ListUsers(ctx context.Context) (*dto.UserListResponse, error)
	CreateCounselor(ctx context.Context, req *dto.CreateCounselorRequest) (*dto.UserResponse, error)
	ChangeRole(ctx context.Context, userID uuid.UUID, role string) (*dto.UserResponse, error)
	SetActive(ctx context.Context, userID uuid.UUID, active bool) (*dto.UserResponse, error)
	// DeleteUser removes the user and everything hanging off it: profile,
	// appointments, mood entries, availability, assigned-counselor references.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	LatestProfileChanges(ctx context.Context) (*dto.ProfileChangeListResponse, error)
}

// profileChangeLimit caps the admin audit feed.
const profileChangeLimit = 20

type adminUserUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
	availabilityRepo   repository.AvailabilityRepository
	appointmentRepo    repository.AppointmentRepository
	moodRepo           repository.MoodEntryRepository
	profileChangeRepo  repository.ProfileChangeRepository
	auth               AuthUsecase
}

func NewAdminUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	availabilityRepo repository.AvailabilityRepository,
	appointmentRepo repository.AppointmentRepository,
	moodRepo repository.MoodEntryRepository,
	profileChangeRepo repository.ProfileChangeRepository,
	auth AuthUsecase,
) AdminUserUsecase {
	return &adminUserUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
		availabilityRepo:   availabilityRepo,
		appointmentRepo:    appointmentRepo,
		moodRepo:           moodRepo,
		profileChangeRepo:  profileChangeRepo,
		auth:               auth,
	}
}

func (u *adminUserUsecase) ListUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *adminUserUsecase) CreateCounselor(ctx context.Context, req *dto.CreateCounselorRequest) (*dto.UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:     normalizeEmail(req.Email),
		Password:  string(hashedPassword),
		FullName:  req.FullName,
		Specialty: req.Specialty,
		RoleID:    entity.RoleIDCounselor,
		IsActive:  true,
	}

	if err := u.userRepo.Create(u.db.WithContext(ctx), user); err != nil {
		if isUniqueViolation(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create counselor: %+v", err)
		return nil, err
	}

	user.Role = entity.Role{ID: entity.RoleIDCounselor, RoleName: entity.RoleCounselor}
	return converter.UserToResponse(user), nil
}

func (u *adminUserUsecase) ChangeRole(ctx context.Context, userID uuid.UUID, role string) (*dto.UserResponse, error) {
	roleID, ok := roleIDByName(role)
	if !ok {
		return nil, ErrInvalidRole
	}

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

	user.RoleID = roleID
	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user role: %+v", err)
		return nil, err
	}

	// Moving into the patient role requires a profile to book against
	if roleID == entity.RoleIDPatient {
		profile, err := u.patientProfileRepo.FindByUserID(tx, userID)
		if err != nil {
			u.log.Warnf("Failed to find patient profile: %+v", err)
			return nil, err
		}
		if profile == nil {
			if err := u.patientProfileRepo.Create(tx, &entity.PatientProfile{UserID: userID}); err != nil {
				u.log.Warnf("Failed to create patient profile: %+v", err)
				return nil, err
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	user.Role = entity.Role{ID: roleID, RoleName: role}
	return converter.UserToResponse(user), nil
}

func (u *adminUserUsecase) SetActive(ctx context.Context, userID uuid.UUID, active bool) (*dto.UserResponse, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.IsActive = active
	if err := u.userRepo.Update(db, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	// A deactivated account must not keep working on existing tokens
	if !active {
		if err := u.auth.RevokeAllUserTokens(ctx, userID); err != nil {
			return nil, err
		}
	}

	return converter.UserToResponse(user), nil
}

func (u *adminUserUsecase) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	switch user.RoleID {
	case entity.RoleIDPatient:
		if err := u.moodRepo.DeleteByPatient(tx, userID); err != nil {
			u.log.Warnf("Failed to delete mood entries: %+v", err)
			return err
		}
		if err := u.appointmentRepo.DeleteByPatient(tx, userID); err != nil {
			u.log.Warnf("Failed to delete patient appointments: %+v", err)
			return err
		}
		if err := u.patientProfileRepo.Delete(tx, userID); err != nil {
			u.log.Warnf("Failed to delete patient profile: %+v", err)
			return err
		}
	case entity.RoleIDCounselor:
		if err := u.appointmentRepo.DeleteByCounselor(tx, userID); err != nil {
			u.log.Warnf("Failed to delete counselor appointments: %+v", err)
			return err
		}
		if err := u.availabilityRepo.DeleteByCounselor(tx, userID); err != nil {
			u.log.Warnf("Failed to delete availability slots: %+v", err)
			return err
		}
		if err := u.patientProfileRepo.ClearAssignedCounselor(tx, userID); err != nil {
			u.log.Warnf("Failed to clear counselor assignments: %+v", err)
			return err
		}
	}

	if err := u.userRepo.Delete(tx, userID); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.auth.RevokeAllUserTokens(ctx, userID); err != nil {
		return err
	}

	u.log.Infof("User deleted: id=%s, role=%d", userID, user.RoleID)
	return nil
}

func (u *adminUserUsecase) LatestProfileChanges(ctx context.Context) (*dto.ProfileChangeListResponse, error) {
	changes, err := u.profileChangeRepo.FindLatest(u.db.WithContext(ctx), profileChangeLimit)
	if err != nil {
		u.log.Warnf("Failed to list profile changes: %+v", err)
		return nil, err
	}

	return &dto.ProfileChangeListResponse{
		Changes: converter.ProfileChangesToResponses(changes),
		Total:   len(changes),
	}, nil
}

func roleIDByName(role string) (int, bool) {
	switch role {
	case entity.RoleAdmin:
		return entity.RoleIDAdmin, true
	case entity.RoleCounselor:
		return entity.RoleIDCounselor, true
	case entity.RolePatient:
		return entity.RoleIDPatient, true
	}
	return 0, false
}
