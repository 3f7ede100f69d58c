/*
Package tasksdk provides a client SDK for the tasks service.

# Overview

The service stores personal task lists behind token authentication. Users
register with a name, email and password, exchange their credentials for a
signed token, and then manage tasks that only they can see.

# Client vs Session

  - Client: unauthenticated operations (health, registration, token exchange)
  - Session: operations that need a token (profile and tasks)

Create a Client and log in to get a Session:

	client := tasksdk.NewClient("http://localhost:8080")

	_, err := client.Register(ctx, tasksdk.RegisterRequest{
		Name:     "John Connor",
		Email:    "john@connor.net",
		Password: "123456",
	})

	session, err := client.Login(ctx, "john@connor.net", "123456")

	task, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "Estudar"})
	tasks, err := session.ListTasks(ctx)

A Session built from a token obtained elsewhere works the same way:

	session := client.NewSession(token)

# Errors

Every non-2xx response is returned as an *APIError carrying the HTTP status,
the error code and its description:

	_, err := session.GetTask(ctx, 99)
	if tasksdk.IsNotFound(err) {
		// absent, or owned by someone else
	}

Tasks owned by other users are reported exactly like tasks that do not exist.
*/
package tasksdk
