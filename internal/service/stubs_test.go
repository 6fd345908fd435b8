package service

import (
	"context"

	"bookery/internal/models"
	"bookery/internal/repository"
)

type userRepoStub struct {
	createFn     func(context.Context, *models.User) error
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	getByNameFn  func(context.Context, string) (*models.User, error)
	updateFn     func(context.Context, *models.User) error
	deleteFn     func(context.Context, uint) error
	listFn       func(context.Context, int, int) ([]models.User, error)
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
func (s *userRepoStub) GetByName(ctx context.Context, name string) (*models.User, error) {
	return s.getByNameFn(ctx, name)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:     func(context.Context, *models.User) error { return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		getByNameFn:  func(context.Context, string) (*models.User, error) { return nil, nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
		listFn:       func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type bookRepoStub struct {
	createFn             func(context.Context, *models.Book) error
	getByIDFn            func(context.Context, uint) (*models.Book, error)
	updateFn             func(context.Context, *models.Book) error
	deleteFn             func(context.Context, uint) error
	listFn               func(context.Context, repository.BookFilter) ([]models.Book, error)
	findOrCreateGenresFn func(context.Context, []string) ([]models.Genre, error)
	replaceGenresFn      func(context.Context, *models.Book, []models.Genre) error
}

func (s *bookRepoStub) Create(ctx context.Context, book *models.Book) error {
	return s.createFn(ctx, book)
}
func (s *bookRepoStub) GetByID(ctx context.Context, id uint) (*models.Book, error) {
	return s.getByIDFn(ctx, id)
}
func (s *bookRepoStub) Update(ctx context.Context, book *models.Book) error {
	return s.updateFn(ctx, book)
}
func (s *bookRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *bookRepoStub) List(ctx context.Context, filter repository.BookFilter) ([]models.Book, error) {
	return s.listFn(ctx, filter)
}
func (s *bookRepoStub) FindOrCreateGenres(ctx context.Context, names []string) ([]models.Genre, error) {
	return s.findOrCreateGenresFn(ctx, names)
}
func (s *bookRepoStub) ReplaceGenres(ctx context.Context, book *models.Book, genres []models.Genre) error {
	return s.replaceGenresFn(ctx, book, genres)
}

func noopBookRepo() *bookRepoStub {
	return &bookRepoStub{
		createFn:             func(context.Context, *models.Book) error { return nil },
		getByIDFn:            func(_ context.Context, id uint) (*models.Book, error) { return &models.Book{ID: id}, nil },
		updateFn:             func(context.Context, *models.Book) error { return nil },
		deleteFn:             func(context.Context, uint) error { return nil },
		listFn:               func(context.Context, repository.BookFilter) ([]models.Book, error) { return nil, nil },
		findOrCreateGenresFn: func(context.Context, []string) ([]models.Genre, error) { return nil, nil },
		replaceGenresFn:      func(context.Context, *models.Book, []models.Genre) error { return nil },
	}
}

type cartRepoStub struct {
	getByUserAndBookFn func(context.Context, uint, uint) (*models.CartItem, error)
	getByIDForUserFn   func(context.Context, uint, uint) (*models.CartItem, error)
	createFn           func(context.Context, *models.CartItem) error
	updateFn           func(context.Context, *models.CartItem) error
	deleteForUserFn    func(context.Context, uint, uint) error
	listByUserFn       func(context.Context, uint) ([]models.CartItem, error)
	clearForUserFn     func(context.Context, uint) error
}

func (s *cartRepoStub) GetByUserAndBook(ctx context.Context, userID, bookID uint) (*models.CartItem, error) {
	return s.getByUserAndBookFn(ctx, userID, bookID)
}
func (s *cartRepoStub) GetByIDForUser(ctx context.Context, itemID, userID uint) (*models.CartItem, error) {
	return s.getByIDForUserFn(ctx, itemID, userID)
}
func (s *cartRepoStub) Create(ctx context.Context, item *models.CartItem) error {
	return s.createFn(ctx, item)
}
func (s *cartRepoStub) Update(ctx context.Context, item *models.CartItem) error {
	return s.updateFn(ctx, item)
}
func (s *cartRepoStub) DeleteForUser(ctx context.Context, itemID, userID uint) error {
	return s.deleteForUserFn(ctx, itemID, userID)
}
func (s *cartRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *cartRepoStub) ClearForUser(ctx context.Context, userID uint) error {
	return s.clearForUserFn(ctx, userID)
}

func noopCartRepo() *cartRepoStub {
	return &cartRepoStub{
		getByUserAndBookFn: func(context.Context, uint, uint) (*models.CartItem, error) { return nil, nil },
		getByIDForUserFn:   func(_ context.Context, itemID, _ uint) (*models.CartItem, error) { return &models.CartItem{ID: itemID}, nil },
		createFn:           func(context.Context, *models.CartItem) error { return nil },
		updateFn:           func(context.Context, *models.CartItem) error { return nil },
		deleteForUserFn:    func(context.Context, uint, uint) error { return nil },
		listByUserFn:       func(context.Context, uint) ([]models.CartItem, error) { return nil, nil },
		clearForUserFn:     func(context.Context, uint) error { return nil },
	}
}

type ratingRepoStub struct {
	getByUserAndBookFn func(context.Context, uint, uint) (*models.Rating, error)
	createFn           func(context.Context, *models.Rating) error
	updateFn           func(context.Context, *models.Rating) error
	deleteForUserFn    func(context.Context, uint, uint) error
	listByUserFn       func(context.Context, uint) ([]models.Rating, error)
}

func (s *ratingRepoStub) GetByUserAndBook(ctx context.Context, userID, bookID uint) (*models.Rating, error) {
	return s.getByUserAndBookFn(ctx, userID, bookID)
}
func (s *ratingRepoStub) Create(ctx context.Context, rating *models.Rating) error {
	return s.createFn(ctx, rating)
}
func (s *ratingRepoStub) Update(ctx context.Context, rating *models.Rating) error {
	return s.updateFn(ctx, rating)
}
func (s *ratingRepoStub) DeleteForUser(ctx context.Context, bookID, userID uint) error {
	return s.deleteForUserFn(ctx, bookID, userID)
}
func (s *ratingRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Rating, error) {
	return s.listByUserFn(ctx, userID)
}

func noopRatingRepo() *ratingRepoStub {
	return &ratingRepoStub{
		getByUserAndBookFn: func(context.Context, uint, uint) (*models.Rating, error) { return nil, nil },
		createFn:           func(context.Context, *models.Rating) error { return nil },
		updateFn:           func(context.Context, *models.Rating) error { return nil },
		deleteForUserFn:    func(context.Context, uint, uint) error { return nil },
		listByUserFn:       func(context.Context, uint) ([]models.Rating, error) { return nil, nil },
	}
}

type reviewRepoStub struct {
	getByIDFn           func(context.Context, uint) (*models.Review, error)
	getByUserAndBookFn  func(context.Context, uint, uint) (*models.Review, error)
	createFn            func(context.Context, *models.Review) error
	updateFn            func(context.Context, *models.Review) error
	deleteForUserFn     func(context.Context, uint, uint) error
	deleteByIDFn        func(context.Context, uint) error
	listByUserFn        func(context.Context, uint) ([]models.Review, error)
	listByBookFn        func(context.Context, uint, int, int) ([]models.Review, error)
	createCommentFn     func(context.Context, *models.ReviewComment) error
	getCommentByIDFn    func(context.Context, uint) (*models.ReviewComment, error)
	listCommentsFn      func(context.Context, uint) ([]models.ReviewComment, error)
	deleteCommentByIDFn func(context.Context, uint) error
	getLikeFn           func(context.Context, uint, uint) (*models.ReviewLike, error)
	createLikeFn        func(context.Context, *models.ReviewLike) error
	updateLikeFn        func(context.Context, *models.ReviewLike) error
	deleteLikeFn        func(context.Context, uint) error
}

func (s *reviewRepoStub) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	return s.getByIDFn(ctx, id)
}
func (s *reviewRepoStub) GetByUserAndBook(ctx context.Context, userID, bookID uint) (*models.Review, error) {
	return s.getByUserAndBookFn(ctx, userID, bookID)
}
func (s *reviewRepoStub) Create(ctx context.Context, review *models.Review) error {
	return s.createFn(ctx, review)
}
func (s *reviewRepoStub) Update(ctx context.Context, review *models.Review) error {
	return s.updateFn(ctx, review)
}
func (s *reviewRepoStub) DeleteForUser(ctx context.Context, bookID, userID uint) error {
	return s.deleteForUserFn(ctx, bookID, userID)
}
func (s *reviewRepoStub) DeleteByID(ctx context.Context, id uint) error {
	return s.deleteByIDFn(ctx, id)
}
func (s *reviewRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *reviewRepoStub) ListByBook(ctx context.Context, bookID uint, limit, offset int) ([]models.Review, error) {
	return s.listByBookFn(ctx, bookID, limit, offset)
}
func (s *reviewRepoStub) CreateComment(ctx context.Context, comment *models.ReviewComment) error {
	return s.createCommentFn(ctx, comment)
}
func (s *reviewRepoStub) GetCommentByID(ctx context.Context, id uint) (*models.ReviewComment, error) {
	return s.getCommentByIDFn(ctx, id)
}
func (s *reviewRepoStub) ListComments(ctx context.Context, reviewID uint) ([]models.ReviewComment, error) {
	return s.listCommentsFn(ctx, reviewID)
}
func (s *reviewRepoStub) DeleteCommentByID(ctx context.Context, id uint) error {
	return s.deleteCommentByIDFn(ctx, id)
}
func (s *reviewRepoStub) GetLike(ctx context.Context, reviewID, userID uint) (*models.ReviewLike, error) {
	return s.getLikeFn(ctx, reviewID, userID)
}
func (s *reviewRepoStub) CreateLike(ctx context.Context, like *models.ReviewLike) error {
	return s.createLikeFn(ctx, like)
}
func (s *reviewRepoStub) UpdateLike(ctx context.Context, like *models.ReviewLike) error {
	return s.updateLikeFn(ctx, like)
}
func (s *reviewRepoStub) DeleteLike(ctx context.Context, id uint) error {
	return s.deleteLikeFn(ctx, id)
}

func noopReviewRepo() *reviewRepoStub {
	return &reviewRepoStub{
		getByIDFn:           func(_ context.Context, id uint) (*models.Review, error) { return &models.Review{ID: id}, nil },
		getByUserAndBookFn:  func(context.Context, uint, uint) (*models.Review, error) { return nil, nil },
		createFn:            func(context.Context, *models.Review) error { return nil },
		updateFn:            func(context.Context, *models.Review) error { return nil },
		deleteForUserFn:     func(context.Context, uint, uint) error { return nil },
		deleteByIDFn:        func(context.Context, uint) error { return nil },
		listByUserFn:        func(context.Context, uint) ([]models.Review, error) { return nil, nil },
		listByBookFn:        func(context.Context, uint, int, int) ([]models.Review, error) { return nil, nil },
		createCommentFn:     func(context.Context, *models.ReviewComment) error { return nil },
		getCommentByIDFn:    func(_ context.Context, id uint) (*models.ReviewComment, error) { return &models.ReviewComment{ID: id}, nil },
		listCommentsFn:      func(context.Context, uint) ([]models.ReviewComment, error) { return nil, nil },
		deleteCommentByIDFn: func(context.Context, uint) error { return nil },
		getLikeFn:           func(context.Context, uint, uint) (*models.ReviewLike, error) { return nil, nil },
		createLikeFn:        func(context.Context, *models.ReviewLike) error { return nil },
		updateLikeFn:        func(context.Context, *models.ReviewLike) error { return nil },
		deleteLikeFn:        func(context.Context, uint) error { return nil },
	}
}

type socialRepoStub struct {
	createFollowFn       func(context.Context, *models.Follow) error
	getFollowFn          func(context.Context, uint, uint) (*models.Follow, error)
	deleteFollowFn       func(context.Context, uint, uint) error
	listFollowingFn      func(context.Context, uint) ([]models.Follow, error)
	listFollowerIDsFn    func(context.Context, uint) ([]uint, error)
	createBlockFn        func(context.Context, *models.Block) error
	getBlockFn           func(context.Context, uint, uint) (*models.Block, error)
	blockExistsBetweenFn func(context.Context, uint, uint) (bool, error)
	deleteBlockFn        func(context.Context, uint, uint) error
	listBlocksFn         func(context.Context, uint) ([]models.Block, error)
}

func (s *socialRepoStub) CreateFollow(ctx context.Context, follow *models.Follow) error {
	return s.createFollowFn(ctx, follow)
}
func (s *socialRepoStub) GetFollow(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	return s.getFollowFn(ctx, followerID, followingID)
}
func (s *socialRepoStub) DeleteFollow(ctx context.Context, followerID, followingID uint) error {
	return s.deleteFollowFn(ctx, followerID, followingID)
}
func (s *socialRepoStub) ListFollowing(ctx context.Context, followerID uint) ([]models.Follow, error) {
	return s.listFollowingFn(ctx, followerID)
}
func (s *socialRepoStub) ListFollowerIDs(ctx context.Context, followingID uint) ([]uint, error) {
	return s.listFollowerIDsFn(ctx, followingID)
}
func (s *socialRepoStub) CreateBlock(ctx context.Context, block *models.Block) error {
	return s.createBlockFn(ctx, block)
}
func (s *socialRepoStub) GetBlock(ctx context.Context, blockerID, blockedID uint) (*models.Block, error) {
	return s.getBlockFn(ctx, blockerID, blockedID)
}
func (s *socialRepoStub) BlockExistsBetween(ctx context.Context, userID1, userID2 uint) (bool, error) {
	return s.blockExistsBetweenFn(ctx, userID1, userID2)
}
func (s *socialRepoStub) DeleteBlock(ctx context.Context, blockerID, blockedID uint) error {
	return s.deleteBlockFn(ctx, blockerID, blockedID)
}
func (s *socialRepoStub) ListBlocks(ctx context.Context, blockerID uint) ([]models.Block, error) {
	return s.listBlocksFn(ctx, blockerID)
}

func noopSocialRepo() *socialRepoStub {
	return &socialRepoStub{
		createFollowFn:       func(context.Context, *models.Follow) error { return nil },
		getFollowFn:          func(context.Context, uint, uint) (*models.Follow, error) { return nil, nil },
		deleteFollowFn:       func(context.Context, uint, uint) error { return nil },
		listFollowingFn:      func(context.Context, uint) ([]models.Follow, error) { return nil, nil },
		listFollowerIDsFn:    func(context.Context, uint) ([]uint, error) { return nil, nil },
		createBlockFn:        func(context.Context, *models.Block) error { return nil },
		getBlockFn:           func(context.Context, uint, uint) (*models.Block, error) { return nil, nil },
		blockExistsBetweenFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		deleteBlockFn:        func(context.Context, uint, uint) error { return nil },
		listBlocksFn:         func(context.Context, uint) ([]models.Block, error) { return nil, nil },
	}
}

type threadRepoStub struct {
	createFn            func(context.Context, *models.Thread) error
	getByIDFn           func(context.Context, uint) (*models.Thread, error)
	updateFn            func(context.Context, *models.Thread) error
	deleteFn            func(context.Context, uint) error
	listFn              func(context.Context, int, int) ([]models.Thread, error)
	createCommentFn     func(context.Context, *models.ThreadComment) error
	getCommentByIDFn    func(context.Context, uint) (*models.ThreadComment, error)
	deleteCommentByIDFn func(context.Context, uint) error
	createFollowFn      func(context.Context, *models.ThreadFollow) error
	getFollowFn         func(context.Context, uint, uint) (*models.ThreadFollow, error)
	deleteFollowFn      func(context.Context, uint, uint) error
	listFollowerIDsFn   func(context.Context, uint) ([]uint, error)
}

func (s *threadRepoStub) Create(ctx context.Context, thread *models.Thread) error {
	return s.createFn(ctx, thread)
}
func (s *threadRepoStub) GetByID(ctx context.Context, id uint) (*models.Thread, error) {
	return s.getByIDFn(ctx, id)
}
func (s *threadRepoStub) Update(ctx context.Context, thread *models.Thread) error {
	return s.updateFn(ctx, thread)
}
func (s *threadRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *threadRepoStub) List(ctx context.Context, limit, offset int) ([]models.Thread, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *threadRepoStub) CreateComment(ctx context.Context, comment *models.ThreadComment) error {
	return s.createCommentFn(ctx, comment)
}
func (s *threadRepoStub) GetCommentByID(ctx context.Context, id uint) (*models.ThreadComment, error) {
	return s.getCommentByIDFn(ctx, id)
}
func (s *threadRepoStub) DeleteCommentByID(ctx context.Context, id uint) error {
	return s.deleteCommentByIDFn(ctx, id)
}
func (s *threadRepoStub) CreateFollow(ctx context.Context, follow *models.ThreadFollow) error {
	return s.createFollowFn(ctx, follow)
}
func (s *threadRepoStub) GetFollow(ctx context.Context, userID, threadID uint) (*models.ThreadFollow, error) {
	return s.getFollowFn(ctx, userID, threadID)
}
func (s *threadRepoStub) DeleteFollow(ctx context.Context, userID, threadID uint) error {
	return s.deleteFollowFn(ctx, userID, threadID)
}
func (s *threadRepoStub) ListFollowerIDs(ctx context.Context, threadID uint) ([]uint, error) {
	return s.listFollowerIDsFn(ctx, threadID)
}

func noopThreadRepo() *threadRepoStub {
	return &threadRepoStub{
		createFn:            func(context.Context, *models.Thread) error { return nil },
		getByIDFn:           func(_ context.Context, id uint) (*models.Thread, error) { return &models.Thread{ID: id}, nil },
		updateFn:            func(context.Context, *models.Thread) error { return nil },
		deleteFn:            func(context.Context, uint) error { return nil },
		listFn:              func(context.Context, int, int) ([]models.Thread, error) { return nil, nil },
		createCommentFn:     func(context.Context, *models.ThreadComment) error { return nil },
		getCommentByIDFn:    func(_ context.Context, id uint) (*models.ThreadComment, error) { return &models.ThreadComment{ID: id}, nil },
		deleteCommentByIDFn: func(context.Context, uint) error { return nil },
		createFollowFn:      func(context.Context, *models.ThreadFollow) error { return nil },
		getFollowFn:         func(context.Context, uint, uint) (*models.ThreadFollow, error) { return nil, nil },
		deleteFollowFn:      func(context.Context, uint, uint) error { return nil },
		listFollowerIDsFn:   func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

type messageRepoStub struct {
	createFn            func(context.Context, *models.Message) error
	getByIDFn           func(context.Context, uint) (*models.Message, error)
	updateFn            func(context.Context, *models.Message) error
	listBetweenFn       func(context.Context, uint, uint, int, int) ([]models.Message, error)
	listConversationsFn func(context.Context, uint) ([]repository.ConversationSummary, error)
	markReadFn          func(context.Context, uint, uint) error
	unreadCountFn       func(context.Context, uint) (int64, error)
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	return s.getByIDFn(ctx, id)
}
func (s *messageRepoStub) Update(ctx context.Context, message *models.Message) error {
	return s.updateFn(ctx, message)
}
func (s *messageRepoStub) ListBetween(ctx context.Context, userID, partnerID uint, limit, offset int) ([]models.Message, error) {
	return s.listBetweenFn(ctx, userID, partnerID, limit, offset)
}
func (s *messageRepoStub) ListConversations(ctx context.Context, userID uint) ([]repository.ConversationSummary, error) {
	return s.listConversationsFn(ctx, userID)
}
func (s *messageRepoStub) MarkRead(ctx context.Context, userID, partnerID uint) error {
	return s.markReadFn(ctx, userID, partnerID)
}
func (s *messageRepoStub) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.unreadCountFn(ctx, userID)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:            func(context.Context, *models.Message) error { return nil },
		getByIDFn:           func(_ context.Context, id uint) (*models.Message, error) { return &models.Message{ID: id}, nil },
		updateFn:            func(context.Context, *models.Message) error { return nil },
		listBetweenFn:       func(context.Context, uint, uint, int, int) ([]models.Message, error) { return nil, nil },
		listConversationsFn: func(context.Context, uint) ([]repository.ConversationSummary, error) { return nil, nil },
		markReadFn:          func(context.Context, uint, uint) error { return nil },
		unreadCountFn:       func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type alertRepoStub struct {
	createBatchFn    func(context.Context, []models.Alert) error
	getByIDForUserFn func(context.Context, uint, uint) (*models.Alert, error)
	markReadFn       func(context.Context, uint, uint) error
	markAllReadFn    func(context.Context, uint) error
	deleteForUserFn  func(context.Context, uint, uint) error
	listByUserFn     func(context.Context, uint, int, int) ([]models.Alert, error)
	unreadCountFn    func(context.Context, uint) (int64, error)
}

func (s *alertRepoStub) CreateBatch(ctx context.Context, alerts []models.Alert) error {
	return s.createBatchFn(ctx, alerts)
}
func (s *alertRepoStub) GetByIDForUser(ctx context.Context, alertID, userID uint) (*models.Alert, error) {
	return s.getByIDForUserFn(ctx, alertID, userID)
}
func (s *alertRepoStub) MarkRead(ctx context.Context, alertID, userID uint) error {
	return s.markReadFn(ctx, alertID, userID)
}
func (s *alertRepoStub) MarkAllRead(ctx context.Context, userID uint) error {
	return s.markAllReadFn(ctx, userID)
}
func (s *alertRepoStub) DeleteForUser(ctx context.Context, alertID, userID uint) error {
	return s.deleteForUserFn(ctx, alertID, userID)
}
func (s *alertRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Alert, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}
func (s *alertRepoStub) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.unreadCountFn(ctx, userID)
}

func noopAlertRepo() *alertRepoStub {
	return &alertRepoStub{
		createBatchFn:    func(context.Context, []models.Alert) error { return nil },
		getByIDForUserFn: func(_ context.Context, alertID, _ uint) (*models.Alert, error) { return &models.Alert{ID: alertID}, nil },
		markReadFn:       func(context.Context, uint, uint) error { return nil },
		markAllReadFn:    func(context.Context, uint) error { return nil },
		deleteForUserFn:  func(context.Context, uint, uint) error { return nil },
		listByUserFn:     func(context.Context, uint, int, int) ([]models.Alert, error) { return nil, nil },
		unreadCountFn:    func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type orderRepoStub struct {
	createFromCartFn func(context.Context, *models.Order) error
	getByIDForUserFn func(context.Context, uint, uint) (*models.Order, error)
	listByUserFn     func(context.Context, uint) ([]models.Order, error)
}

func (s *orderRepoStub) CreateFromCart(ctx context.Context, order *models.Order) error {
	return s.createFromCartFn(ctx, order)
}
func (s *orderRepoStub) GetByIDForUser(ctx context.Context, orderID, userID uint) (*models.Order, error) {
	return s.getByIDForUserFn(ctx, orderID, userID)
}
func (s *orderRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.listByUserFn(ctx, userID)
}

func noopOrderRepo() *orderRepoStub {
	return &orderRepoStub{
		createFromCartFn: func(context.Context, *models.Order) error { return nil },
		getByIDForUserFn: func(_ context.Context, orderID, _ uint) (*models.Order, error) { return &models.Order{ID: orderID}, nil },
		listByUserFn:     func(context.Context, uint) ([]models.Order, error) { return nil, nil },
	}
}

func noopAlerts() *AlertService {
	return NewAlertService(noopAlertRepo(), noopSocialRepo(), noopThreadRepo(), nil)
}

func neverAdmin(context.Context, uint) (bool, error) { return false, nil }

func alwaysAdmin(context.Context, uint) (bool, error) { return true, nil }
