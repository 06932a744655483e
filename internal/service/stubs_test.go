package service

import (
	"context"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn             func(context.Context, *models.User) error
	getByIDFn            func(context.Context, uint) (*models.User, error)
	getByEmailFn         func(context.Context, string) (*models.User, error)
	getProfileByUserIDFn func(context.Context, uint) (*models.Profile, error)
	updateProfileFn      func(context.Context, *models.Profile) error
	deleteFn             func(context.Context, uint) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetProfileByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getProfileByUserIDFn(ctx, userID)
}
func (s *userRepoStub) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	return s.updateProfileFn(ctx, profile)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getProfileByUserIDFn: func(_ context.Context, _ uint) (*models.Profile, error) {
			return nil, gorm.ErrRecordNotFound
		},
		updateProfileFn: func(_ context.Context, _ *models.Profile) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn               func(context.Context, *models.Post) error
	getByIDFn              func(context.Context, uint) (*models.Post, error)
	getBySlugActiveFn      func(context.Context, string) (*models.Post, error)
	getByUserAndIDFn       func(context.Context, uint, uint) (*models.Post, error)
	listActiveFn           func(context.Context) ([]*models.Post, error)
	listActiveByCategoryFn func(context.Context, uint) ([]*models.Post, error)
	listByUserFn           func(context.Context, uint) ([]*models.Post, error)
	incrementViewFn        func(context.Context, uint) error
	updateFn               func(context.Context, *models.Post) error
	deleteFn               func(context.Context, uint) error
	isLikedFn              func(context.Context, uint, uint) (bool, error)
	addLikeFn              func(context.Context, uint, uint) (bool, error)
	removeLikeFn           func(context.Context, uint, uint) error
	authorStatsFn          func(context.Context, uint) (*models.AuthorStats, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetBySlugActive(ctx context.Context, slug string) (*models.Post, error) {
	return s.getBySlugActiveFn(ctx, slug)
}
func (s *postRepoStub) GetByUserAndID(ctx context.Context, userID, postID uint) (*models.Post, error) {
	return s.getByUserAndIDFn(ctx, userID, postID)
}
func (s *postRepoStub) ListActive(ctx context.Context) ([]*models.Post, error) {
	return s.listActiveFn(ctx)
}
func (s *postRepoStub) ListActiveByCategory(ctx context.Context, categoryID uint) ([]*models.Post, error) {
	return s.listActiveByCategoryFn(ctx, categoryID)
}
func (s *postRepoStub) ListByUser(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *postRepoStub) IncrementView(ctx context.Context, id uint) error {
	return s.incrementViewFn(ctx, id)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) AddLike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.addLikeFn(ctx, userID, postID)
}
func (s *postRepoStub) RemoveLike(ctx context.Context, userID, postID uint) error {
	return s.removeLikeFn(ctx, userID, postID)
}
func (s *postRepoStub) AuthorStats(ctx context.Context, userID uint) (*models.AuthorStats, error) {
	return s.authorStatsFn(ctx, userID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:          func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:         func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		getBySlugActiveFn: func(_ context.Context, _ string) (*models.Post, error) { return &models.Post{}, nil },
		getByUserAndIDFn: func(_ context.Context, _, _ uint) (*models.Post, error) {
			return nil, gorm.ErrRecordNotFound
		},
		listActiveFn:           func(_ context.Context) ([]*models.Post, error) { return nil, nil },
		listActiveByCategoryFn: func(_ context.Context, _ uint) ([]*models.Post, error) { return nil, nil },
		listByUserFn:           func(_ context.Context, _ uint) ([]*models.Post, error) { return nil, nil },
		incrementViewFn:        func(_ context.Context, _ uint) error { return nil },
		updateFn:               func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:               func(_ context.Context, _ uint) error { return nil },
		isLikedFn:              func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		addLikeFn:              func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		removeLikeFn:           func(_ context.Context, _, _ uint) error { return nil },
		authorStatsFn: func(_ context.Context, _ uint) (*models.AuthorStats, error) {
			return &models.AuthorStats{}, nil
		},
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn           func(context.Context, *models.Comment) error
	getByIDFn          func(context.Context, uint) (*models.Comment, error)
	listByPostAuthorFn func(context.Context, uint) ([]*models.Comment, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPostAuthor(ctx context.Context, authorID uint) ([]*models.Comment, error) {
	return s.listByPostAuthorFn(ctx, authorID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Comment, error) {
			return nil, gorm.ErrRecordNotFound
		},
		listByPostAuthorFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
	}
}

// bookmarkRepoStub is a stub for repository.BookmarkRepository.
type bookmarkRepoStub struct {
	findByUserAndPostFn func(context.Context, uint, uint) (*models.Bookmark, error)
	createFn            func(context.Context, *models.Bookmark) error
	deleteFn            func(context.Context, uint) error
}

func (s *bookmarkRepoStub) FindByUserAndPost(ctx context.Context, userID, postID uint) (*models.Bookmark, error) {
	return s.findByUserAndPostFn(ctx, userID, postID)
}
func (s *bookmarkRepoStub) Create(ctx context.Context, bookmark *models.Bookmark) error {
	return s.createFn(ctx, bookmark)
}
func (s *bookmarkRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopBookmarkRepo() *bookmarkRepoStub {
	return &bookmarkRepoStub{
		findByUserAndPostFn: func(_ context.Context, _, _ uint) (*models.Bookmark, error) { return nil, nil },
		createFn:            func(_ context.Context, _ *models.Bookmark) error { return nil },
		deleteFn:            func(_ context.Context, _ uint) error { return nil },
	}
}

// notificationRepoStub is a stub for repository.NotificationRepository.
type notificationRepoStub struct {
	createFn           func(context.Context, *models.Notification) error
	getByIDFn          func(context.Context, uint) (*models.Notification, error)
	listUnseenByUserFn func(context.Context, uint) ([]*models.Notification, error)
	markSeenFn         func(context.Context, uint) error
}

func (s *notificationRepoStub) Create(ctx context.Context, notification *models.Notification) error {
	return s.createFn(ctx, notification)
}
func (s *notificationRepoStub) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	return s.getByIDFn(ctx, id)
}
func (s *notificationRepoStub) ListUnseenByUser(ctx context.Context, userID uint) ([]*models.Notification, error) {
	return s.listUnseenByUserFn(ctx, userID)
}
func (s *notificationRepoStub) MarkSeen(ctx context.Context, id uint) error {
	return s.markSeenFn(ctx, id)
}

func noopNotificationRepo() *notificationRepoStub {
	return &notificationRepoStub{
		createFn: func(_ context.Context, _ *models.Notification) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Notification, error) {
			return nil, gorm.ErrRecordNotFound
		},
		listUnseenByUserFn: func(_ context.Context, _ uint) ([]*models.Notification, error) { return nil, nil },
		markSeenFn:         func(_ context.Context, _ uint) error { return nil },
	}
}
