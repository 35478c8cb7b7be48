package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type AllyTag struct{}

var AllyTagComponent = NewComponent[AllyTag]()

type GemTag struct{}

var GemTagComponent = NewComponent[GemTag]()

// WeaponTag marks an orbiting weapon that damages enemies.
type WeaponTag struct{}

var WeaponTagComponent = NewComponent[WeaponTag]()

// ConvertingWeaponTag marks an orbiting weapon that charms enemies.
type ConvertingWeaponTag struct{}

var ConvertingWeaponTagComponent = NewComponent[ConvertingWeaponTag]()
