package db

import (
	"project_management/be/biz/db/mysql"
	"project_management/be/biz/db/redis"
)

func Init() {
	mysql.Init()
	redis.Init()
}
