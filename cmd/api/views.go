package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog-backend/internal/domains/user"
	"library-catalog-backend/internal/shared/middleware"
	"library-catalog-backend/internal/shared/response"
	"library-catalog-backend/pkg/container"
)

// ════════════════════════════════════════════════════════════════
// ROLE-GATED VIEWS
// Small reporting pages, one per role. The middleware chain has
// already verified the token and the exact role.
// ════════════════════════════════════════════════════════════════

// adminViewHandler - GET /v1/admin-view
// System overview: user counts broken down by role.
func adminViewHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := appCtx.UserService.CountByRole(c.Request.Context())
		if err != nil {
			response.InternalServerError(c, "failed to load user statistics")
			return
		}

		var total int64
		for _, n := range counts {
			total += n
		}

		response.Success(c, http.StatusOK, "Admin view", gin.H{
			"page":          "admin",
			"total_users":   total,
			"users_by_role": counts,
		})
	}
}

// librarianViewHandler - GET /v1/librarian-view
// Catalog overview: book and author totals.
func librarianViewHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookCount, err := appCtx.BookService.Count(c.Request.Context())
		if err != nil {
			response.InternalServerError(c, "failed to count books")
			return
		}

		authorCount, err := appCtx.AuthorService.Count(c.Request.Context())
		if err != nil {
			response.InternalServerError(c, "failed to count authors")
			return
		}

		response.Success(c, http.StatusOK, "Librarian view", gin.H{
			"page":          "librarian",
			"total_books":   bookCount,
			"total_authors": authorCount,
		})
	}
}

// memberViewHandler - GET /v1/member-view
// The caller's profile plus their latest posts.
func memberViewHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.GetUserID(c)
		if !ok {
			response.Forbidden(c, "Authentication required")
			return
		}

		// A valid token can outlive its account; surface that as the
		// domain error (404), not a server fault
		profile, err := appCtx.UserService.GetProfile(c.Request.Context(), userID)
		if err != nil {
			response.ErrorResponse(c, user.ToHTTPStatus(err), user.ToErrorCode(err), err.Error())
			return
		}

		recent, err := appCtx.PostService.ListByAuthor(c.Request.Context(), userID, 10)
		if err != nil {
			response.InternalServerError(c, "failed to load recent posts")
			return
		}

		response.Success(c, http.StatusOK, "Member view", gin.H{
			"page":         "member",
			"profile":      profile,
			"recent_posts": recent,
		})
	}
}
