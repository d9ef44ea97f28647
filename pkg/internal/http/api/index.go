package api

import "github.com/gofiber/fiber/v2"

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL)
	{
		auth := api.Group("/auth")
		{
			auth.Post("/register", doRegister)
			auth.Post("/login", doLogin)
			auth.Post("/refresh", doRefreshToken)
		}

		users := api.Group("/users")
		{
			users.Get("/", listAccount)
			users.Get("/me", getMyself)
			users.Put("/me", updateMyself)
			users.Get("/:userId", getAccount)
			users.Post("/:userId/enable", enableAccount)
			users.Post("/:userId/disable", disableAccount)
		}

		posts := api.Group("/posts")
		{
			posts.Get("/", listFeed)
			posts.Post("/", createPost)
			posts.Get("/me", listMyPost)
			posts.Get("/:postId", getPost)
			posts.Delete("/:postId", deletePost)
			posts.Post("/:postId/likes", likePost)
			posts.Delete("/:postId/likes", unlikePost)
			posts.Get("/:postId/comments", listComment)
			posts.Post("/:postId/comments", createComment)
		}

		comments := api.Group("/comments")
		{
			comments.Put("/:commentId", updateComment)
			comments.Delete("/:commentId", deleteComment)
		}

		statistics := api.Group("/statistics")
		{
			statistics.Get("/posts-by-author", getPostsByAuthorStats)
			statistics.Get("/comments-by-day", getCommentsByDayStats)
			statistics.Get("/comments-by-post", getCommentsByPostStats)
			statistics.Get("/users-by-day", getSignupsByDayStats)
		}
	}
}
