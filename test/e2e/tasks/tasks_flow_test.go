package tasks_test

import (
	"testing"

	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// TestTaskLifecycle walks one user through register, login and every task
// operation.
func TestTaskLifecycle(t *testing.T) {
	baseURL, cleanup := setupTasksContainer(t, nil)
	defer cleanup()

	ctx := t.Context()
	client := tasksdk.NewClient(baseURL)
	john, session := registerAndLogin(t, client, "John Connor", "john@connor.net")

	me, err := session.GetUser(ctx)
	require.NoError(t, err)
	require.Equal(t, john.ID, me.ID)

	task, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "Estudar"})
	require.NoError(t, err)
	require.False(t, task.Done)
	require.Equal(t, john.ID, task.OwnerID)

	tasks, err := session.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, task.ID, tasks[0].ID)

	done := true
	require.NoError(t, session.UpdateTask(ctx, task.ID, tasksdk.UpdateTaskRequest{Done: &done}))

	got, err := session.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.True(t, got.Done)

	require.NoError(t, session.DeleteTask(ctx, task.ID))

	_, err = session.GetTask(ctx, task.ID)
	assertNotFound(t, err, "deleted task")
}

// TestCrossUserAccess verifies another user's token cannot see or change a task.
func TestCrossUserAccess(t *testing.T) {
	baseURL, cleanup := setupTasksContainer(t, nil)
	defer cleanup()

	ctx := t.Context()
	client := tasksdk.NewClient(baseURL)
	_, john := registerAndLogin(t, client, "John Connor", "john@connor.net")
	_, sarah := registerAndLogin(t, client, "Sarah Connor", "sarah@connor.net")

	task, err := john.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "Estudar"})
	require.NoError(t, err)

	err = sarah.DeleteTask(ctx, task.ID)
	assertNotFound(t, err, "foreign delete")

	_, err = sarah.GetTask(ctx, task.ID)
	assertNotFound(t, err, "foreign get")

	list, err := sarah.ListTasks(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = john.GetTask(ctx, task.ID)
	require.NoError(t, err, "owner still sees the task")
}

// TestCredentialFailures verifies wrong passwords and unknown emails both
// produce a plain 401.
func TestCredentialFailures(t *testing.T) {
	baseURL, cleanup := setupTasksContainer(t, nil)
	defer cleanup()

	client := tasksdk.NewClient(baseURL)
	registerAndLogin(t, client, "John Connor", "john@connor.net")

	_, err := client.Login(t.Context(), "john@connor.net", "wrong")
	assertUnauthorized(t, err, "wrong password")

	_, err = client.Login(t.Context(), "nobody@connor.net", testPassword)
	assertUnauthorized(t, err, "unknown email")

	_, err = client.NewSession("not-a-token").ListTasks(t.Context())
	assertUnauthorized(t, err, "garbage token")
}

// TestTokenRejectedByOtherSecret verifies a token issued by one container is
// refused by a container configured with a different secret.
func TestTokenRejectedByOtherSecret(t *testing.T) {
	baseURL, cleanup := setupTasksContainer(t, nil)
	defer cleanup()

	client := tasksdk.NewClient(baseURL)
	_, session := registerAndLogin(t, client, "John Connor", "john@connor.net")

	otherURL, otherCleanup := setupTasksContainer(t, map[string]string{
		"TASKS_TOKEN_SECRET": "a-completely-different-secret-0123456789",
	})
	defer otherCleanup()

	_, err := tasksdk.NewClient(otherURL).NewSession(session.Token()).ListTasks(t.Context())
	assertUnauthorized(t, err, "token signed with another secret")
}

// TestDeleteAccount verifies deleting an account revokes its token.
func TestDeleteAccount(t *testing.T) {
	baseURL, cleanup := setupTasksContainer(t, nil)
	defer cleanup()

	ctx := t.Context()
	client := tasksdk.NewClient(baseURL)
	_, session := registerAndLogin(t, client, "John Connor", "john@connor.net")

	_, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "Estudar"})
	require.NoError(t, err)

	require.NoError(t, session.DeleteUser(ctx))

	_, err = session.GetUser(ctx)
	assertUnauthorized(t, err, "deleted account")
}
