package store

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"feedbackportal/internal/api"
	"feedbackportal/internal/model"
)

// CurrentUserProvider supplies the identity the like bookkeeping is
// tracked against.
type CurrentUserProvider interface {
	CurrentUser() (model.User, bool)
}

// PostStore owns the in-memory post collection, including each post's
// comments and comment replies. All writes go through store operations;
// the view layer only reads snapshots.
type PostStore struct {
	api   api.PostAPI
	users CurrentUserProvider

	mu          sync.Mutex
	posts       []model.Post
	liked       map[string]bool   // post id -> liked by current user
	commentPost map[string]string // comment id -> owning post id
}

func NewPostStore(postAPI api.PostAPI, users CurrentUserProvider) *PostStore {
	return &PostStore{
		api:         postAPI,
		users:       users,
		liked:       make(map[string]bool),
		commentPost: make(map[string]string),
	}
}

// Load replaces the collection with the server's post list and rebuilds
// the like membership and the comment index.
func (s *PostStore) Load(ctx context.Context) error {
	posts, err := s.api.List(ctx)
	if err != nil {
		return fmt.Errorf("load posts: %w", err)
	}

	user, _ := s.users.CurrentUser()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = posts
	s.reindexLocked(user.ID)
	log.Printf("[PostStore] Loaded %d posts", len(posts))
	return nil
}

func (s *PostStore) reindexLocked(userID string) {
	s.liked = make(map[string]bool, len(s.posts))
	s.commentPost = make(map[string]string)
	for i := range s.posts {
		p := &s.posts[i]
		if userID != "" && p.LikedByUser(userID) {
			s.liked[p.ID] = true
		}
		for j := range p.Comments {
			s.commentPost[p.Comments[j].ID] = p.ID
		}
	}
}

// Posts returns a snapshot of the collection.
func (s *PostStore) Posts() []model.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Liked reports whether the current user has liked the post.
func (s *PostStore) Liked(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liked[postID]
}

// ToggleLike flips the like state optimistically, before the network call
// settles. On failure the membership and the count are reverted together;
// a split rollback would break likeCount == len(likedBy).
func (s *PostStore) ToggleLike(ctx context.Context, postID string) error {
	user, ok := s.users.CurrentUser()
	if !ok {
		return model.ErrNotAuthenticated
	}

	s.mu.Lock()
	idx := s.findPostLocked(postID)
	if idx < 0 {
		s.mu.Unlock()
		return model.ErrPostNotFound
	}
	wasLiked := s.liked[postID]
	s.applyLikeLocked(idx, user.ID, !wasLiked)
	s.mu.Unlock()

	if err := s.api.Like(ctx, postID); err != nil {
		s.mu.Lock()
		if idx := s.findPostLocked(postID); idx >= 0 {
			s.applyLikeLocked(idx, user.ID, wasLiked)
		}
		s.mu.Unlock()
		log.Printf("[PostStore] Like toggle on post %s failed, rolled back: %v", postID, err)
		return fmt.Errorf("toggle like: %w", err)
	}
	return nil
}

// applyLikeLocked sets the like relation to the target state, mutating
// the count only together with the membership.
func (s *PostStore) applyLikeLocked(idx int, userID string, liked bool) {
	p := &s.posts[idx]
	if liked {
		s.liked[p.ID] = true
		if !p.LikedByUser(userID) {
			p.LikedBy = append(p.LikedBy, userID)
			p.LikeCount++
		}
		return
	}
	delete(s.liked, p.ID)
	for i, id := range p.LikedBy {
		if id == userID {
			p.LikedBy = append(p.LikedBy[:i], p.LikedBy[i+1:]...)
			p.LikeCount--
			return
		}
	}
}

// AddComment appends the server-returned comment once the call confirms.
// No optimistic insertion: a failure must leave no ghost comment behind.
func (s *PostStore) AddComment(ctx context.Context, postID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, model.ErrContentRequired
	}

	s.mu.Lock()
	idx := s.findPostLocked(postID)
	s.mu.Unlock()
	if idx < 0 {
		return nil, model.ErrPostNotFound
	}

	comment, err := s.api.AddComment(ctx, postID, content)
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fillCommentDefaults(comment, postID)
	// re-resolve: the collection may have been reloaded mid-flight
	if idx := s.findPostLocked(postID); idx >= 0 {
		s.posts[idx].Comments = append(s.posts[idx].Comments, *comment)
		s.commentPost[comment.ID] = postID
	}
	return comment, nil
}

func (s *PostStore) fillCommentDefaults(comment *model.Comment, postID string) {
	if comment.AuthorName == "" {
		if user, ok := s.users.CurrentUser(); ok && user.Name != "" {
			comment.AuthorName = user.Name
		} else {
			comment.AuthorName = model.DefaultAuthorName
		}
	}
	if comment.PostID == "" {
		comment.PostID = postID
	}
}

// AddReply resolves the owning post through the comment index and appends
// the confirmed reply to that comment.
func (s *PostStore) AddReply(ctx context.Context, commentID, content string) (*model.Reply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, model.ErrContentRequired
	}

	s.mu.Lock()
	postID, ok := s.commentPost[commentID]
	s.mu.Unlock()
	if !ok {
		return nil, model.ErrCommentNotFound
	}

	reply, err := s.api.AddReply(ctx, commentID, content)
	if err != nil {
		return nil, fmt.Errorf("add reply: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if reply.AuthorName == "" {
		if user, ok := s.users.CurrentUser(); ok && user.Name != "" {
			reply.AuthorName = user.Name
		} else {
			reply.AuthorName = model.DefaultAuthorName
		}
	}
	if reply.CommentID == "" {
		reply.CommentID = commentID
	}
	if idx := s.findPostLocked(postID); idx >= 0 {
		p := &s.posts[idx]
		for j := range p.Comments {
			if p.Comments[j].ID == commentID {
				p.Comments[j].Replies = append(p.Comments[j].Replies, *reply)
				break
			}
		}
	}
	return reply, nil
}

// CreatePost inserts the confirmed post at the head of the collection,
// matching the server's newest-first ordering.
func (s *PostStore) CreatePost(ctx context.Context, req model.CreatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	post, err := s.api.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]model.Post{*post}, s.posts...)
	for j := range post.Comments {
		s.commentPost[post.Comments[j].ID] = post.ID
	}
	log.Printf("[PostStore] Created post %s", post.ID)
	return post, nil
}

// UpdatePost replaces the stored post with the server's version.
func (s *PostStore) UpdatePost(ctx context.Context, postID string, req model.UpdatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	post, err := s.api.Update(ctx, postID, req)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.findPostLocked(postID); idx >= 0 {
		s.posts[idx] = *post
	}
	return post, nil
}

// DeletePost removes the post after the server confirms. Asking the user
// for confirmation is the caller's job.
func (s *PostStore) DeletePost(ctx context.Context, postID string) error {
	if err := s.api.Delete(ctx, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.findPostLocked(postID)
	if idx < 0 {
		return nil
	}
	for j := range s.posts[idx].Comments {
		delete(s.commentPost, s.posts[idx].Comments[j].ID)
	}
	delete(s.liked, postID)
	s.posts = append(s.posts[:idx], s.posts[idx+1:]...)
	log.Printf("[PostStore] Deleted post %s", postID)
	return nil
}

// FlatComment pairs a comment with its owning post's title for the
// cross-post triage listing.
type FlatComment struct {
	model.Comment
	PostTitle string
}

// CommentsBySentiment flattens comments across all posts, optionally
// filtered by sentiment label. An empty filter selects everything.
func (s *PostStore) CommentsBySentiment(filter model.Sentiment) []FlatComment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []FlatComment
	for i := range s.posts {
		p := &s.posts[i]
		for j := range p.Comments {
			c := p.Comments[j]
			if filter != "" && c.Sentiment != filter {
				continue
			}
			if c.PostID == "" {
				c.PostID = p.ID
			}
			out = append(out, FlatComment{Comment: c, PostTitle: p.Title})
		}
	}
	return out
}

func (s *PostStore) findPostLocked(postID string) int {
	for i := range s.posts {
		if s.posts[i].ID == postID {
			return i
		}
	}
	return -1
}
