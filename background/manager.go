package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bitmark-inc/aid-api/dispatch"
	"github.com/bitmark-inc/aid-api/external/onesignal"
	"github.com/bitmark-inc/aid-api/store"
)

// BackgroundManager consumes dispatch events published by the api
// server and fans them out as push notifications
type BackgroundManager struct {
	requests store.RequestStore
	profiles store.ProfileDirectory

	notifier NotificationCenter

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		requests:   mongoStore,
		profiles:   mongoStore,
		notifier:   NewOnesignalNotificationCenter(viper.GetString("onesignal.appid"), o),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks binds all dispatch task names to their handlers
func (m *BackgroundManager) RegisterTasks() error {
	if err := m.RegisterTask(dispatch.TaskBroadcastNewRequest, m.BroadcastNewRequest); err != nil {
		return err
	}
	return m.RegisterTask(dispatch.TaskNotifyRequestAccepted, m.NotifyRequestAccepted)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("aid-worker", 5)
	return m.worker.Launch()
}
