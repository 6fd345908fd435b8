package server

import (
	"bookery/internal/models"
	"bookery/internal/repository"
	"bookery/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetBooks handles GET /books (public catalog browse)
func (s *Server) GetBooks(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	books, err := s.bookService.List(c.UserContext(), repository.BookFilter{
		Genre:  c.Query("genre"),
		Search: c.Query("search"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(books)
}

// GetBook handles GET /books/:id
func (s *Server) GetBook(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	book, err := s.bookService.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(book)
}

// GetBookReviews handles GET /books/:id/reviews
func (s *Server) GetBookReviews(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)
	reviews, err := s.reviewService.ListByBook(c.UserContext(), id, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reviews)
}

type bookRequest struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	ISBN        string   `json:"isbn"`
	Price       float64  `json:"price"`
	CoverURL    string   `json:"cover_url"`
	Description string   `json:"description"`
	PageCount   int      `json:"page_count"`
	Genres      []string `json:"genres"`
}

func (r bookRequest) toInput() service.BookInput {
	return service.BookInput{
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Price:       r.Price,
		CoverURL:    r.CoverURL,
		Description: r.Description,
		PageCount:   r.PageCount,
		Genres:      r.Genres,
	}
}

// AdminGetBooks handles GET /admin/books
func (s *Server) AdminGetBooks(c *fiber.Ctx) error {
	page := parsePagination(c, 50)
	books, err := s.bookService.List(c.UserContext(), repository.BookFilter{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(books)
}

// AdminCreateBook handles POST /admin/books
func (s *Server) AdminCreateBook(c *fiber.Ctx) error {
	var req bookRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	book, err := s.bookService.Create(c.UserContext(), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(book)
}

// AdminUpdateBook handles PATCH /admin/books/:id
func (s *Server) AdminUpdateBook(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req bookRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	book, err := s.bookService.Update(c.UserContext(), id, req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(book)
}

// AdminDeleteBook handles DELETE /admin/books/:id
func (s *Server) AdminDeleteBook(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.bookService.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Book deleted"})
}
