package camomile

import (
	"github.com/camomile-project/camomile-go/api"
	"github.com/camomile-project/camomile-go/util"
)

type ErrorResponse = api.ErrorResponse
type User = api.User
type UserCreate = api.UserCreate
type UserUpdate = api.UserUpdate
type Group = api.Group
type GroupCreate = api.GroupCreate
type GroupUpdate = api.GroupUpdate
type Corpus = api.Corpus
type CorpusCreate = api.CorpusCreate
type CorpusUpdate = api.CorpusUpdate
type Medium = api.Medium
type MediumCreate = api.MediumCreate
type MediumUpdate = api.MediumUpdate
type Layer = api.Layer
type LayerCreate = api.LayerCreate
type LayerUpdate = api.LayerUpdate
type Annotation = api.Annotation
type AnnotationCreate = api.AnnotationCreate
type AnnotationUpdate = api.AnnotationUpdate
type Queue = api.Queue
type QueueCreate = api.QueueCreate
type QueueUpdate = api.QueueUpdate
type Right = api.Right
type Permissions = api.Permissions
type MetadataFile = api.MetadataFile
type WatchAck = api.WatchAck
type Logger = util.Logger

const (
	RoleUser  = api.RoleUser
	RoleAdmin = api.RoleAdmin

	RightRead  = api.RightRead
	RightWrite = api.RightWrite
	RightAdmin = api.RightAdmin
)

var NewMetadataFile = api.NewMetadataFile
