package server

import (
	"github.com/gofiber/fiber/v2"
)

// CategoryList handles GET /api/post/category/list
func (s *Server) CategoryList(c *fiber.Ctx) error {
	categories, err := s.categoryService.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(categories)
}

// CategoryPosts handles GET /api/post/category/posts/:slug
func (s *Server) CategoryPosts(c *fiber.Ctx) error {
	posts, err := s.categoryService.PostsBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

// PostList handles GET /api/post/lists
func (s *Server) PostList(c *fiber.Ctx) error {
	posts, err := s.postService.ListActive(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(posts)
}

// PostDetail handles GET /api/post/detail/:slug. Each successful read counts
// a view.
func (s *Server) PostDetail(c *fiber.Ctx) error {
	post, err := s.postService.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(post)
}
